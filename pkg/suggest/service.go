// Package suggest implements the OpenSearch suggestions wire format,
// orchestrating the bang-aware and plain-text query paths over the
// prediction engine and the external suggestions client.
package suggest

import (
	"context"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/lmarchetti/bangserve/internal/utils"
	"github.com/lmarchetti/bangserve/pkg/bangs"
	"github.com/lmarchetti/bangserve/pkg/external"
	"github.com/lmarchetti/bangserve/pkg/predict"
)

const (
	resultLimit       = 8
	plainPredictLimit = 8
	bangTier1Max      = 5
	bangTier2Max      = 2
)

// Service orchestrates bang resolution, local prediction, and the external
// suggestions client into the OpenSearch suggestions response shape.
type Service struct {
	registry *bangs.Registry
	engine   *predict.Engine
	external *external.Client
	log      *log.Logger
}

// New constructs a suggest Service from already-initialized collaborators.
func New(registry *bangs.Registry, engine *predict.Engine, ext *external.Client, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{registry: registry, engine: engine, external: ext, log: logger}
}

// HandleSuggest returns the echoed query and a deduplicated, truncated list
// of suggestion strings for rawQuery under acceptLanguage. It never
// returns an error: any internal failure degrades to a partial or empty
// list.
func (s *Service) HandleSuggest(ctx context.Context, rawQuery, acceptLanguage string) (string, []string) {
	trimmed := strings.TrimSpace(rawQuery)
	if trimmed == "" {
		return "", []string{}
	}

	lang := parseAcceptLanguage(acceptLanguage)
	dd := NewDeduper(resultLimit)

	if strings.HasPrefix(trimmed, "!") {
		s.handleBangQuery(ctx, trimmed, lang, dd)
	} else {
		s.handlePlainQuery(ctx, trimmed, lang, dd)
	}

	return rawQuery, dd.Result()
}

func (s *Service) handleBangQuery(ctx context.Context, query, lang string, dd *Deduper) {
	body := strings.TrimPrefix(query, "!")
	fields := strings.Fields(body)

	var bangPrefix, textAfterBang string
	if len(fields) > 0 {
		bangPrefix = fields[0]
		textAfterBang = strings.Join(fields[1:], " ")
	}

	matches := s.registry.MatchBangs(bangPrefix, bangTier1Max, bangTier2Max)

	for _, b := range matches {
		if dd.Full() {
			return
		}
		if textAfterBang != "" {
			dd.Add("!" + b.Trigger + " " + textAfterBang)
		} else {
			dd.Add("!" + b.Trigger + " — " + b.Name)
		}
	}

	if textAfterBang != "" && len(matches) > 0 && !dd.Full() {
		bestTrigger := matches[0].Trigger
		externals := s.external.Fetch(ctx, textAfterBang, lang)
		for _, ext := range externals {
			if dd.Full() {
				return
			}
			dd.Add("!" + bestTrigger + " " + ext)
		}
	}
}

func (s *Service) handlePlainQuery(ctx context.Context, query, lang string, dd *Deduper) {
	var localPreds []predict.Prediction
	var externals []string

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if utils.IsValidInput(query) {
			localPreds = s.engine.Predict(query, plainPredictLimit)
		}
	}()
	go func() {
		defer wg.Done()
		externals = s.external.Fetch(ctx, query, lang)
	}()
	wg.Wait()

	for _, ext := range externals {
		if dd.Full() {
			return
		}
		dd.Add(ext)
	}

	merged := mergeWithExternal(localPreds, nil, plainPredictLimit)
	for _, p := range merged {
		if dd.Full() {
			return
		}
		dd.Add(p.Text)
	}
}

// parseAcceptLanguage takes the first comma-separated tag, strips any
// quality parameter, and defaults to "en" when absent.
func parseAcceptLanguage(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return "en"
	}
	first := strings.Split(header, ",")[0]
	first = strings.Split(first, ";")[0]
	first = strings.TrimSpace(first)
	if first == "" {
		return "en"
	}
	return first
}
