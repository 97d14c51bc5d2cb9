package main

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/0x0FACED/go-crease/pkg/crease"
	"github.com/0x0FACED/go-crease/pkg/drawing"
	"github.com/0x0FACED/go-crease/pkg/fold"
	"github.com/0x0FACED/go-crease/pkg/logger"
	"github.com/0x0FACED/go-crease/pkg/planar"
	"github.com/0x0FACED/go-crease/pkg/render"
	"github.com/0x0FACED/go-crease/static"
	"go.uber.org/zap"
)

const (
	defaultSize  = 400
	defaultCount = 4
)

var errBadRequest = errors.New("bad request")

// request - разобранные параметры формы
type request struct {
	pattern  string
	size     float64
	count    int
	segments string
	drawing  string
	cfg      crease.Config
}

func parseRequest(r *http.Request) (request, error) {
	req := request{
		pattern: "waterbomb",
		size:    defaultSize,
		count:   defaultCount,
		cfg:     crease.DefaultConfig(),
	}
	if err := r.ParseForm(); err != nil {
		return req, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	// форма еще не отправлялась - показываем значения по умолчанию
	if len(r.Form) == 0 {
		return req, nil
	}

	if p := r.FormValue("pattern"); p != "" {
		req.pattern = p
	}
	req.segments = r.FormValue("segments")
	req.drawing = r.FormValue("drawing")
	// чекбокс не присылается, если снят
	req.cfg.DetectBoundary = r.FormValue("boundary") == "true"

	var err error
	if req.size, err = floatValue(r, "size", req.size); err != nil {
		return req, err
	}
	if req.count, err = intValue(r, "count", req.count); err != nil {
		return req, err
	}
	if req.cfg.Epsilon, err = floatValue(r, "epsilon", req.cfg.Epsilon); err != nil {
		return req, err
	}
	if req.cfg.MergeTolerance, err = floatValue(r, "merge", req.cfg.MergeTolerance); err != nil {
		return req, err
	}

	if req.size <= 0 || req.count <= 0 {
		return req, fmt.Errorf("%w: size and count must be positive", errBadRequest)
	}
	return req, nil
}

func floatValue(r *http.Request, key string, def float64) (float64, error) {
	s := r.FormValue(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", errBadRequest, key, err)
	}
	return v, nil
}

func intValue(r *http.Request, key string, def int) (int, error) {
	s := r.FormValue(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", errBadRequest, key, err)
	}
	return v, nil
}

func (req request) patternSegments() ([]crease.Segment, error) {
	switch req.pattern {
	case "waterbomb":
		return waterbombPattern(req.size), nil
	case "grid":
		return gridPattern(req.size, req.count), nil
	case "random":
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		return randomPattern(req.size, req.count, rnd), nil
	case "custom":
		segments, err := parseSegments(req.segments)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errBadRequest, err)
		}
		return segments, nil
	case "svg":
		segments, err := drawing.Read(strings.NewReader(req.drawing))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errBadRequest, err)
		}
		return segments, nil
	}
	return nil, fmt.Errorf("%w: unknown pattern %q", errBadRequest, req.pattern)
}

// build разбирает запрос и строит граф
func build(r *http.Request, log *logger.ZapLogger) (request, *planar.Graph, error) {
	req, err := parseRequest(r)
	if err != nil {
		return req, nil, err
	}

	segments, err := req.patternSegments()
	if err != nil {
		return req, nil, err
	}
	log.Info("[app] Шаблон", zap.String("pattern", req.pattern), zap.Int("segments", len(segments)))

	conv, err := crease.NewConverter(req.cfg, log)
	if err != nil {
		return req, nil, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	g, err := conv.Convert(segments)
	if err != nil {
		return req, nil, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return req, g, nil
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, errBadRequest) {
		status = http.StatusBadRequest
	}
	http.Error(w, err.Error(), status)
}

// http обработчик страницы с графом и формой
func patternHandler(w http.ResponseWriter, r *http.Request) {
	// логи идут и на страницу, и в консоль сервера
	log := logger.New(logger.WithWriter(os.Stdout))
	defer log.ClearLogs()

	req, g, err := build(r, log)
	if err != nil {
		writeError(w, err)
		return
	}

	chart := render.Chart(g, "Развертка ("+req.pattern+")")

	fmt.Fprintln(w, static.Part1)

	if err := chart.Render(w); err != nil {
		fmt.Println("Ошибка рендеринга графа:", err)
	}

	fmt.Fprintln(w, static.Part2)

	// Вставляем логи в HTML
	for _, l := range log.Logs {
		fmt.Fprintln(w, l)
	}

	fmt.Fprintln(w, static.Part3)
}

func svgHandler(w http.ResponseWriter, r *http.Request) {
	_, g, err := build(r, logger.Nop())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := render.WriteSVG(w, g, 1); err != nil {
		fmt.Println("Ошибка записи SVG:", err)
	}
}

func foldHandler(w http.ResponseWriter, r *http.Request) {
	req, g, err := build(r, logger.Nop())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := fold.Encode(w, fold.FromGraph(g, req.pattern), true); err != nil {
		fmt.Println("Ошибка записи FOLD:", err)
	}
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", patternHandler)
	mux.HandleFunc("/svg", svgHandler)
	mux.HandleFunc("/fold", foldHandler)
	return mux
}

func main() {
	fmt.Println("Сервер запущен на http://localhost:8080")
	err := http.ListenAndServe(":8080", newMux())
	if err != nil {
		fmt.Println("Err ListenAndServe", err)
	}
}
