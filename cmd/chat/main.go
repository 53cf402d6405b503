// Package main is a command-line client for the Code-Red chatbot server.
//
// Usage:
//
//	codered-chat [--url URL] [--location L] [--language hinglish|english] message...
//	codered-chat --health
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hpn/codered-chatbot/internal/client"
	"github.com/hpn/codered-chatbot/internal/ui"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		ui.PrintError(err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("codered-chat", pflag.ContinueOnError)
	flags.String("url", client.DefaultBaseURL, "chatbot server base URL")
	flags.String("location", "", "your city or state")
	flags.String("language", "", "reply language (hinglish or english); detected when empty")
	flags.Duration("timeout", client.DefaultTimeout, "request timeout")
	health := flags.Bool("health", false, "only check whether the server is up")

	if err := flags.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	v.SetEnvPrefix("CODERED")
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	c := client.New(v.GetString("url"), client.WithTimeout(v.GetDuration("timeout")))
	ctx := context.Background()

	if *health {
		healthy := c.CheckHealth(ctx)
		ui.PrintHealth(c.BaseURL(), healthy)
		if !healthy {
			return errors.New("server is not healthy")
		}
		return nil
	}

	message := strings.TrimSpace(strings.Join(flags.Args(), " "))
	if message == "" {
		return errors.New("message is required")
	}

	reply, err := c.SendMessage(ctx, message,
		client.WithLocation(v.GetString("location")),
		client.WithLanguage(v.GetString("language")),
	)
	if err != nil {
		return err
	}

	ui.PrintReply(reply)
	return nil
}
