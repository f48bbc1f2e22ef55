package routes

import (
	"github.com/gofiber/fiber/v2"

	"workspace-chat-app/handler"
	"workspace-chat-app/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.AuthHandler
	*handler.UserHandler
	*handler.ChatHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.App.Get("/", index)
	rc.GetPublicRoute()
	rc.GetProtectedRoute()
}

func (rc *ConfigRoute) GetPublicRoute() {
	app := rc.App.Group("/api")
	app.Post("/signup", rc.AuthHandler.Signup)
	app.Post("/signin", rc.AuthHandler.Signin)
}

func (rc *ConfigRoute) GetProtectedRoute() {
	app := rc.App.Group("/api", rc.Middleware.JWTProtected)

	app.Get("/me", rc.UserHandler.GetUserByToken)
	app.Get("/users", rc.UserHandler.GetAllUsers)
	app.Get("/workspace", rc.UserHandler.GetWorkspace)

	app.Get("/chats", rc.ChatHandler.GetAllChat)
	app.Post("/chats", rc.ChatHandler.CreateChat)
	app.Get("/chats/:id", rc.ChatHandler.GetChat)
	app.Patch("/chats/:id", rc.ChatHandler.UpdateChat)
	app.Delete("/chats/:id", rc.ChatHandler.DeleteChat)
	app.Post("/chats/:id", rc.ChatHandler.SendMessage)
	app.Get("/chats/:id/messages", rc.ChatHandler.GetMessagesByID)
}

func index(c *fiber.Ctx) error {
	return c.SendString("index")
}
