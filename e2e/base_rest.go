package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
	"web-messenger/auth"
	"web-messenger/contract"
	"web-messenger/infrastructure/rest"
	"web-messenger/observability"
	"web-messenger/services"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseRestSuite struct {
	suite.Suite
	Config Config
	Stats  *observability.APIStats
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseRestSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.BackendURL == "" {
		s.T().Skip("E2E_BACKEND_URL not set")
	}
}

func (s *BaseRestSuite) SetupTest() {
	s.Stats = observability.NewAPIStats()
}

// WithService provides a message service bound to the real backend within a contextual test step
func (s *BaseRestSuite) WithService(name string, fn func(ctx context.Context, service contract.IMessageService)) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	level := slog.LevelInfo
	if s.Config.DebugJSON {
		level = slog.LevelDebug
	}
	log := logs.GetLoggerFromLevel(level)

	transport, err := rest.NewHTTPTransport(log, &http.Client{Timeout: 30 * time.Second},
		s.Config.BackendURL, "", auth.NewTokenSource(s.Config.Token), s.Stats)
	s.Require().NoError(err, "Failed to build transport for "+s.Config.BackendURL)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	start := time.Now()
	fn(ctx, services.NewMessageService(log, transport, nil, contract.DefaultMessagesLimit, 4096))

	snapshot := s.Stats.Snapshot()
	s.T().Logf("%s in %v: requests=%d failures=%d fallbacks=%d profiles=%v",
		name, time.Since(start), snapshot.Requests, snapshot.Failures, snapshot.Fallbacks, snapshot.ByProfile)
}
