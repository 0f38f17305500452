package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"sync/atomic"
	"time"
	"web-messenger/domain"
	"web-messenger/internal"
	"web-messenger/observability"
	"web-messenger/runtime/workers"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

var errBackendDown = errors.New("backend is not reachable")

func (a *app) dispatch(ctx context.Context, command string, args []string) (int, error) {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	limit := fs.Int("limit", a.config.DefaultLimit, "maximum number of messages to fetch")

	switch command {
	case "send":
		from := fs.String("from", "", "sender id")
		to := fs.String("to", "", "receiver id")
		text := fs.String("text", "", "message body")
		if err := fs.Parse(args); err != nil {
			return exitConfig, fmt.Errorf("%w: %v", errUsage, err)
		}
		envelope, err := a.service.SendMessage(ctx, domain.SendMessageRequest{
			SenderID: *from, ReceiverID: *to, Content: *text,
		})
		if err != nil {
			return exitRuntime, err
		}
		fmt.Fprintln(a.out, envelope.Message)
		if envelope.Data != nil {
			a.printMessages([]domain.Message{*envelope.Data})
		}

	case "list":
		if err := fs.Parse(args); err != nil {
			return exitConfig, fmt.Errorf("%w: %v", errUsage, err)
		}
		envelope, err := a.service.GetMessages(ctx, *limit)
		if err != nil {
			return exitRuntime, err
		}
		a.printMessages(lo.FromPtr(envelope.Data))

	case "conversation":
		first := fs.String("a", "", "first participant")
		second := fs.String("b", "", "second participant")
		if err := fs.Parse(args); err != nil {
			return exitConfig, fmt.Errorf("%w: %v", errUsage, err)
		}
		if *first == "" || *second == "" {
			return exitConfig, fmt.Errorf("%w: conversation needs -a and -b", errUsage)
		}
		a.printMessages(a.service.GetConversationMessages(ctx, *first, *second, *limit))

	case "by-sender", "by-receiver":
		id := fs.String("id", "", "user id")
		if err := fs.Parse(args); err != nil {
			return exitConfig, fmt.Errorf("%w: %v", errUsage, err)
		}
		get := lo.Ternary(command == "by-sender", a.service.GetMessagesBySender, a.service.GetMessagesByReceiver)
		envelope, err := get(ctx, *id, *limit)
		if err != nil {
			return exitRuntime, err
		}
		a.printMessages(lo.FromPtr(envelope.Data))

	case "health":
		if !a.service.TestConnection(ctx) {
			fmt.Fprintln(a.out, "Backend health: down")
			return exitRuntime, errBackendDown
		}
		fmt.Fprintln(a.out, "Backend health: up")

	case "ping":
		if !a.service.TestBasicConnectivity(ctx) {
			fmt.Fprintln(a.out, "Basic connectivity: failed")
			return exitRuntime, errBackendDown
		}
		fmt.Fprintln(a.out, "Basic connectivity: ok")

	case "watch":
		debugAddr := fs.String("debug-addr", "", "serve a stats page on this address")
		if err := fs.Parse(args); err != nil {
			return exitConfig, fmt.Errorf("%w: %v", errUsage, err)
		}
		var up atomic.Bool
		if *debugAddr != "" {
			internal.StartDebugServer(ctx, a.log, *debugAddr, a.config.App.Name, func() (map[string]any, bool) {
				return a.statsMap(), up.Load()
			})
		}
		worker := workers.NewHealthWorker(a.log, a.service, a.config.HealthInterval, func(healthy bool) {
			up.Store(healthy)
			fmt.Fprintf(a.out, "%s backend %s\n", time.Now().Format(time.TimeOnly), lo.Ternary(healthy, "up", "down"))
		})
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return exitRuntime, err
		}

	default:
		return exitConfig, fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
	return exitOK, nil
}

func (a *app) printMessages(messages []domain.Message) {
	table := newTable(a.out, []string{"ID", "Time", "From", "To", "Status", "Message"})
	table.AppendBulk(lo.Map(messages, func(m domain.Message, _ int) []string {
		return []string{
			m.ID,
			m.CreatedAt.Local().Format(time.DateTime),
			m.SenderID,
			m.ReceiverID,
			string(m.Status),
			m.Content,
		}
	}))
	table.Render()
	fmt.Fprintf(a.out, "%d message(s)\n", len(messages))
}

func (a *app) statsMap() map[string]any {
	snapshot := a.stats.Snapshot()
	stats := map[string]any{
		"requests":  snapshot.Requests,
		"failures":  snapshot.Failures,
		"fallbacks": snapshot.Fallbacks,
	}
	for profile, count := range snapshot.ByProfile {
		stats["served by "+profile] = count
	}
	if snapshot.LastError != "" {
		stats["last error"] = snapshot.LastError
	}
	self, err := observability.SelfStats()
	if err != nil {
		a.log.Debug("Failed to collect self stats", "error", err)
		return stats
	}
	stats["pid"] = self.PID
	stats["rss bytes"] = self.RSSBytes
	stats["cpu percent"] = fmt.Sprintf("%.1f", self.CPUPercent)
	return stats
}

func (a *app) printStats() {
	snapshot := a.stats.Snapshot()
	table := newTable(a.out, []string{"Metric", "Value"})
	table.Append([]string{"requests", strconv.FormatUint(snapshot.Requests, 10)})
	table.Append([]string{"failures", strconv.FormatUint(snapshot.Failures, 10)})
	table.Append([]string{"fallbacks", strconv.FormatUint(snapshot.Fallbacks, 10)})
	for _, profile := range snapshot.Profiles() {
		table.Append([]string{"served by " + profile, strconv.FormatUint(snapshot.ByProfile[profile], 10)})
	}
	if snapshot.LastError != "" {
		table.Append([]string{"last error", snapshot.LastError})
	}
	table.Render()
}

func newTable(out io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
