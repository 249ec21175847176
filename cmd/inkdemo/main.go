// Command inkdemo renders calligraphy samples with the ink brush.
//
// Usage:
//
//	inkdemo dryness --font brush.ttf --char 墨 --out dryness.png
//	inkdemo blur    --font brush.ttf --char 墨 --out blur.png
//	inkdemo column  --font brush.ttf --text "天地玄黃宇宙洪荒" --config brush.toml
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
