// Command keygen writes a fresh Ed25519 token signing key pair as PEM files.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"workspace-chat-app/security"
)

func main() {
	out := pflag.StringP("out", "o", "keys", "directory the key files are written to")
	name := pflag.StringP("name", "n", "auth", "base name of the key files")
	force := pflag.BoolP("force", "f", false, "overwrite existing key files")
	pflag.Parse()

	if err := run(*out, *name, *force); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out, name string, force bool) error {
	privatePath := filepath.Join(out, name+".pem")
	publicPath := filepath.Join(out, name+".pub.pem")

	if !force {
		for _, path := range []string{privatePath, publicPath} {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists, use --force to replace it", path)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
		}
	}
	if err := os.MkdirAll(out, 0700); err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}

	keys, err := security.GenerateKeyPair()
	if err != nil {
		return err
	}
	if err := keys.SaveKeyPair(privatePath, publicPath); err != nil {
		return err
	}

	fmt.Printf("wrote %s and %s\n", privatePath, publicPath)
	return nil
}
