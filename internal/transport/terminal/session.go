package terminal

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"organelle-quiz/internal/app"
	"organelle-quiz/internal/domain"
)

// Run reads one command per line from in and applies it to the controller until
// the input ends, the player quits or ctx is cancelled.
//
//	Enter   start (start screen)
//	1-4     select an option
//	n       next question, once offered
//	r       play again (results screen)
//	q       quit
func Run(ctx context.Context, controller *app.Controller, renderer *Renderer, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		cmd := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if cmd == "q" {
			return nil
		}
		if err := apply(controller, renderer, cmd); err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrOptionNotFound):
				renderer.Printf("comando indisponível agora\n")
			default:
				return err
			}
		}
	}
	return scanner.Err()
}

func apply(controller *app.Controller, renderer *Renderer, cmd string) error {
	switch cmd {
	case "", "s":
		if renderer.Screen() == domain.ScreenQuiz {
			return nil
		}
		return controller.Start()
	case "n":
		if !renderer.AdvanceVisible() {
			renderer.Printf("aguarde...\n")
			return nil
		}
		return controller.Advance()
	case "r":
		return controller.Restart()
	}
	n, err := strconv.Atoi(cmd)
	if err != nil {
		return domain.ErrInvalidTransition
	}
	return controller.SelectIndex(n - 1)
}
