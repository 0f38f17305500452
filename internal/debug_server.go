package internal

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/samber/lo"
)

var statsPage = template.Must(template.New("stats").Parse(`<!doctype html>
<html>
<head><title>{{.Title}}</title><meta http-equiv="refresh" content="5"></head>
<body>
<h1>{{.Title}}</h1>
<p>Backend: <b>{{if .Up}}up{{else}}down{{end}}</b> at {{.Generated}}</p>
<table>
{{range .Rows}}<tr><td>{{.Name}}</td><td>{{.Value}}</td></tr>
{{end}}</table>
</body>
</html>`))

type StatRow struct {
	Name  string
	Value any
}

// StatsProvider returns the current counters and whether the backend is considered up.
type StatsProvider func() (map[string]any, bool)

type pageData struct {
	Title     string
	Up        bool
	Generated string
	Rows      []StatRow
}

// StartDebugServer serves a small HTML dashboard on addr until ctx is done.
func StartDebugServer(ctx context.Context, log *slog.Logger, addr, title string, provider StatsProvider) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		stats, up := provider()
		data := pageData{
			Title:     title,
			Up:        up,
			Generated: time.Now().Format(time.TimeOnly),
			Rows:      sortedRows(stats),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = statsPage.Execute(w, data)
	})

	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Debug server stopped", "addr", addr, "error", err)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()
	log.Info("Debug server listening", "addr", addr)
	return server
}

func sortedRows(stats map[string]any) []StatRow {
	names := lo.Keys(stats)
	slices.Sort(names)
	return lo.Map(names, func(name string, _ int) StatRow {
		return StatRow{Name: name, Value: stats[name]}
	})
}
