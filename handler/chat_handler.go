package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"workspace-chat-app/apperror"
	"workspace-chat-app/dto/req"
	"workspace-chat-app/dto/res"
	"workspace-chat-app/security"
	"workspace-chat-app/usecase"
)

// ChatHandler authorizes every chat operation against the caller's identity
// before handing it to the chat usecase.
type ChatHandler struct {
	usecase.ChatUsecase
	WorkspaceUsecase usecase.WorkspaceUsecase
	MessageUsecase   usecase.MessageUsecase
	*logrus.Logger
}

func NewChatHandler(chatUsecase usecase.ChatUsecase, workspaceUsecase usecase.WorkspaceUsecase, messageUsecase usecase.MessageUsecase, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{
		ChatUsecase:      chatUsecase,
		WorkspaceUsecase: workspaceUsecase,
		MessageUsecase:   messageUsecase,
		Logger:           logger,
	}
}

func (handler *ChatHandler) GetAllChat(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	chats, err := handler.ChatUsecase.List(c.Context(), identity.WorkspaceID)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to list chats")
		return err
	}

	responses := res.CommonResponse[[]res.ChatResponse]{
		Message:    "Successfully to Get All Chats",
		StatusCode: fiber.StatusOK,
		Data:       res.NewChatResponses(chats),
	}
	return c.Status(fiber.StatusOK).JSON(responses)
}

func (handler *ChatHandler) CreateChat(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	payload := new(req.ChatRequest)
	if err := parseBody(c, payload); err != nil {
		return err
	}

	chat, err := handler.ChatUsecase.Create(c.Context(), payload, identity.WorkspaceID)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to create chat")
		return err
	}

	response := res.CommonResponse[res.ChatResponse]{
		Message:    "Successfully to Create Chat",
		StatusCode: fiber.StatusCreated,
		Data:       res.NewChatResponse(chat),
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

func (handler *ChatHandler) GetChat(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	chatID, err := chatIDParam(c)
	if err != nil {
		return err
	}

	chat, err := handler.ChatUsecase.GetByID(c.Context(), chatID)
	if err != nil {
		return err
	}
	if err := security.CanViewChat(identity, chat); err != nil {
		return err
	}

	response := res.CommonResponse[res.ChatResponse]{
		Message:    "Successfully to Get Chat",
		StatusCode: fiber.StatusOK,
		Data:       res.NewChatResponse(chat),
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

func (handler *ChatHandler) UpdateChat(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	chatID, err := chatIDParam(c)
	if err != nil {
		return err
	}
	payload := new(req.ChatRequest)
	if err := parseBody(c, payload); err != nil {
		return err
	}

	current, err := handler.ChatUsecase.GetByID(c.Context(), chatID)
	if err != nil {
		return err
	}
	if err := security.CanUpdateChat(identity, current); err != nil {
		handler.Logger.WithError(err).Warnf("User %d may not update chat %d", identity.ID, chatID)
		return err
	}

	chat, err := handler.ChatUsecase.Update(c.Context(), chatID, payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to update chat")
		return err
	}

	response := res.CommonResponse[res.ChatResponse]{
		Message:    "Successfully to Update Chat",
		StatusCode: fiber.StatusOK,
		Data:       res.NewChatResponse(chat),
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

// DeleteChat is reserved to the owner of the chat's workspace.
func (handler *ChatHandler) DeleteChat(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	chatID, err := chatIDParam(c)
	if err != nil {
		return err
	}

	chat, err := handler.ChatUsecase.GetByID(c.Context(), chatID)
	if err != nil {
		return err
	}
	workspace, err := handler.WorkspaceUsecase.FindByID(c.Context(), chat.WorkspaceID)
	if err != nil {
		return err
	}
	if err := security.CanDeleteChat(identity, chat, workspace); err != nil {
		handler.Logger.WithError(err).Warnf("User %d may not delete chat %d", identity.ID, chatID)
		return err
	}

	if err := handler.ChatUsecase.Delete(c.Context(), chatID); err != nil {
		handler.Logger.WithError(err).Error("Failed to delete chat")
		return err
	}

	response := res.CommonResponse[string]{
		Message:    "Successfully to Delete Chat",
		StatusCode: fiber.StatusOK,
		Data:       "success",
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

func (handler *ChatHandler) SendMessage(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	chatID, err := chatIDParam(c)
	if err != nil {
		return err
	}
	payload := new(req.MessageRequest)
	if err := parseBody(c, payload); err != nil {
		return err
	}

	message, err := handler.MessageUsecase.Send(c.Context(), identity, chatID, payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to send message")
		return err
	}

	response := res.CommonResponse[res.MessageResponse]{
		Message:    "Successfully to Send Message",
		StatusCode: fiber.StatusCreated,
		Data:       res.NewMessageResponse(message),
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

func (handler *ChatHandler) GetMessagesByID(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	chatID, err := chatIDParam(c)
	if err != nil {
		return err
	}
	query := new(req.ListMessagesQuery)
	if err := c.QueryParser(query); err != nil {
		return apperror.Wrap(apperror.ErrInvalidRequest, err)
	}

	messages, err := handler.MessageUsecase.List(c.Context(), identity, chatID, query)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to get messages by chat ID")
		return err
	}

	response := res.CommonResponse[[]res.MessageResponse]{
		Message:    "Successfully to Get Messages",
		StatusCode: fiber.StatusOK,
		Data:       res.NewMessageResponses(messages),
	}
	return c.Status(fiber.StatusOK).JSON(response)
}
