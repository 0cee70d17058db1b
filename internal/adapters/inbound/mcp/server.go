package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/partsdesk/partsdesk/internal/adapters/outbound/config"
	"github.com/partsdesk/partsdesk/internal/adapters/outbound/feed"
	"github.com/partsdesk/partsdesk/internal/adapters/outbound/gitinfo"
	"github.com/partsdesk/partsdesk/internal/adapters/outbound/records"
	"github.com/partsdesk/partsdesk/internal/application"
)

// NewPartsDeskMCPServer creates an MCP server whose tools and resources read
// the session last saved under dir. Nothing it exposes changes that session.
func NewPartsDeskMCPServer(dir string) *server.MCPServer {
	s := server.NewMCPServer(
		"partsdesk",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	src := &source{dir: dir, sessions: newSessions()}
	registerTools(s, src)
	registerResources(s, src)

	return s
}

func newSessions() *application.SessionService {
	return application.NewSessionService(config.New(), feed.New, records.New(gitinfo.New()))
}

// source reopens the saved session on every request so a long-running
// server sees the latest save.
type source struct {
	dir      string
	sessions *application.SessionService
}

func (s *source) open() (*application.Session, error) {
	return s.sessions.OpenSaved(s.dir)
}
