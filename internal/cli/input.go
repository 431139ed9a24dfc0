// Package cli handles command-line input for DBG and testing of the bang
// resolver and prediction engine.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lmarchetti/bangserve/pkg/bangs"
	"github.com/lmarchetti/bangserve/pkg/predict"
)

// InputHandler processes user input from stdin, resolving bang queries and
// printing ranked predictions for interactive debugging.
type InputHandler struct {
	resolver     *bangs.Resolver
	registry     *bangs.Registry
	engine       *predict.Engine
	limit        int
	requestCount int
}

// NewInputHandler constructs an InputHandler from already-initialized
// collaborators.
func NewInputHandler(registry *bangs.Registry, engine *predict.Engine, limit int) *InputHandler {
	return &InputHandler{
		resolver: bangs.NewResolver(registry),
		registry: registry,
		engine:   engine,
		limit:    limit,
	}
}

// Start begins the interface loop: continuously prompts for input, reads a
// line from stdin, and passes the trimmed input to handleInput(). Loop
// terminates if an error occurs while reading from stdin.
func (h *InputHandler) Start() error {
	log.Print("bangserve CLI [debug]")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a query and press Enter (Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput resolves a single query, printing the resolved bang URL (if
// any) and the ranked local predictions.
func (h *InputHandler) handleInput(query string) {
	h.requestCount++

	start := time.Now()
	resolved := h.resolver.Resolve(query)
	elapsed := time.Since(start)

	log.Printf("resolve(%q) -> %s  [%v]", query, resolved, elapsed)

	if strings.HasPrefix(query, "!") {
		fields := strings.Fields(strings.TrimPrefix(query, "!"))
		var prefix string
		if len(fields) > 0 {
			prefix = fields[0]
		}
		matches := h.registry.MatchBangs(prefix, 5, 2)
		if len(matches) == 0 {
			log.Info("no bang matches")
			return
		}
		log.Printf("bang matches for %q:", prefix)
		for i, b := range matches {
			log.Printf("%2d. !%s  %s", i+1, b.Trigger, b.Name)
		}
		return
	}

	start = time.Now()
	predictions := h.engine.Predict(query, h.limit)
	elapsed = time.Since(start)
	log.Debugf("predict took [ %v ] for query '%s'", elapsed, query)

	if len(predictions) == 0 {
		log.Warnf("no predictions found for query: '%s'", query)
		return
	}

	log.Printf("found %d predictions for '%s':", len(predictions), query)
	for i, p := range predictions {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", p.Text)
		log.Printf("%2d. %-30s (source: %-8s score: %.2f)", i+1, clWord, p.Source, p.Score)
	}
}
