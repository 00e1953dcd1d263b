package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/domain/credential"
	"github.com/conductorhq/conductor/internal/platform/cache"
	"github.com/conductorhq/conductor/internal/platform/config"
	"github.com/conductorhq/conductor/internal/platform/httpclient"
	"github.com/conductorhq/conductor/internal/platform/telemetry"
	"github.com/conductorhq/conductor/internal/ports"
)

// Compile-time checks that CredentialManager implements both credential ports.
var (
	_ ports.ConnectionService = (*CredentialManager)(nil)
	_ ports.TokenProvider     = (*CredentialManager)(nil)
)

const (
	handshakeSweepInterval = time.Minute

	// handshakeGrace keeps consumed-too-late handshakes around long enough to
	// distinguish an expired state from one that never existed.
	handshakeGrace = time.Hour

	maxTokenResponseBytes = 1 << 20
)

// oauthProvider declares one service's OAuth endpoints and authorization
// parameters. Per-service differences live in this table, not in the flow.
type oauthProvider struct {
	authURL   string
	tokenURL  string
	revokeURL string // empty when the provider has no revoke endpoint
	scopes    []string

	// extraAuthParams are provider-specific query parameters added to the
	// authorization URL.
	extraAuthParams map[string]string

	// omitGrantType skips grant_type on the code exchange for providers with
	// pre-RFC token endpoints.
	omitGrantType bool
}

var oauthProviders = map[domain.Service]oauthProvider{
	domain.ServiceSlack: {
		authURL:       "https://slack.com/oauth/v2/authorize",
		tokenURL:      "https://slack.com/api/oauth.v2.access",
		revokeURL:     "https://slack.com/api/auth.revoke",
		scopes:        []string{"chat:write", "files:write", "channels:read", "users:read"},
		omitGrantType: true,
	},
	domain.ServiceJira: {
		authURL:   "https://auth.atlassian.com/authorize",
		tokenURL:  "https://auth.atlassian.com/oauth/token",
		revokeURL: "https://auth.atlassian.com/oauth/token/revoke",
		scopes:    []string{"read:jira-work", "write:jira-work", "manage:jira-project"},
		extraAuthParams: map[string]string{
			"audience": "api.atlassian.com",
			"prompt":   "consent",
		},
	},
	domain.ServiceGitHub: {
		authURL:  "https://github.com/login/oauth/authorize",
		tokenURL: "https://github.com/login/oauth/access_token",
		scopes:   []string{"repo", "user", "workflow"},
		extraAuthParams: map[string]string{
			"allow_signup": "false",
		},
	},
}

// staticServices authenticate with application-level credentials configured
// at deploy time. They have no per-user grant; the dispatcher passes an empty
// bearer token and their adapters use their own configuration.
var staticServices = map[domain.Service]bool{
	domain.ServiceS3: true,
}

// handshake is the server-side state of one authorization grant in flight,
// keyed by its single-use nonce.
type handshake struct {
	userID    string
	service   domain.Service
	expiresAt time.Time
}

// tokenResponse is the normalized shape of a provider token endpoint reply.
type tokenResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`

	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope"`

	// Provider-specific extras.
	Team struct {
		ID string `json:"id"`
	} `json:"team"`
	BotUserID   string `json:"bot_user_id"`
	ResourceURL string `json:"resource_url"`
}

// CredentialManager implements ports.ConnectionService and
// ports.TokenProvider: the grant handshake, token exchange and refresh,
// revocation, and serving valid tokens to the dispatcher. Handshake nonces
// are single-use and time-boxed.
type CredentialManager struct {
	creds        ports.CredentialStore
	client       *httpclient.Client
	services     *config.ServicesConfig
	handshakes   *cache.Cache[string, handshake]
	handshakeTTL time.Duration
	metrics      *telemetry.Metrics
	logger       *slog.Logger
	now          func() time.Time
}

// NewCredentialManager creates a CredentialManager. The HTTP client is shared
// across providers; token endpoints are absolute URLs from the provider
// table. Close releases the handshake cache's janitor.
func NewCredentialManager(
	creds ports.CredentialStore,
	client *httpclient.Client,
	services *config.ServicesConfig,
	handshakeTTL time.Duration,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *CredentialManager {
	return &CredentialManager{
		creds:        creds,
		client:       client,
		services:     services,
		handshakes:   cache.New[string, handshake](handshakeSweepInterval),
		handshakeTTL: handshakeTTL,
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
	}
}

// Close stops the handshake cache janitor.
func (m *CredentialManager) Close() {
	m.handshakes.Close()
}

// BeginGrant builds the provider's authorization URL with a single-use
// anti-forgery state parameter and records the handshake keyed by it.
func (m *CredentialManager) BeginGrant(ctx context.Context, userID string, service domain.Service, redirectURI string) (string, error) {
	p, ok := oauthProviders[service]
	if !ok {
		return "", fmt.Errorf("beginning grant for %s: %w", service, domain.ErrUnsupportedService)
	}
	svcCfg := m.serviceConfig(service)

	state, err := randomToken()
	if err != nil {
		return "", err
	}
	m.handshakes.Set(state, handshake{
		userID:    userID,
		service:   service,
		expiresAt: m.now().Add(m.handshakeTTL),
	}, m.handshakeTTL+handshakeGrace)

	q := url.Values{}
	q.Set("client_id", svcCfg.ClientID)
	q.Set("redirect_uri", redirectURI)
	q.Set("scope", strings.Join(p.scopes, " "))
	q.Set("state", state)
	q.Set("response_type", "code")
	for k, v := range p.extraAuthParams {
		q.Set(k, v)
	}

	m.logger.InfoContext(ctx, "grant started",
		slog.String("user_id", userID),
		slog.String("service", service.String()),
	)
	return p.authURL + "?" + q.Encode(), nil
}

// CompleteGrant consumes the handshake state, exchanges the code for tokens,
// and upserts the token record for (user, service). The nonce is removed on
// first use regardless of outcome, so a replayed callback always fails.
func (m *CredentialManager) CompleteGrant(ctx context.Context, service domain.Service, code, state, redirectURI string) (*credential.TokenRecord, error) {
	p, ok := oauthProviders[service]
	if !ok {
		return nil, fmt.Errorf("completing grant for %s: %w", service, domain.ErrUnsupportedService)
	}

	hs, ok := m.handshakes.Take(state)
	if !ok {
		return nil, domain.ErrInvalidState
	}
	if m.now().After(hs.expiresAt) {
		return nil, domain.ErrExpiredState
	}
	if hs.service != service {
		return nil, domain.ErrServiceMismatch
	}

	svcCfg := m.serviceConfig(service)
	form := url.Values{}
	form.Set("client_id", svcCfg.ClientID)
	form.Set("client_secret", svcCfg.ClientSecret)
	form.Set("code", code)
	form.Set("redirect_uri", redirectURI)
	if !p.omitGrantType {
		form.Set("grant_type", "authorization_code")
	}

	tr, err := m.postTokenForm(ctx, p.tokenURL, form)
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to exchange code",
			slog.String("operation", "CompleteGrant"),
			slog.String("service", service.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("exchanging code: %w", err)
	}

	now := m.now().UTC()
	rec := &credential.TokenRecord{
		UserID:       hs.userID,
		Service:      service,
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		TokenType:    tr.TokenType,
		Scope:        tr.Scope,
		Metadata:     providerMetadata(service, tr),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if rec.TokenType == "" {
		rec.TokenType = "Bearer"
	}
	if rec.Scope == "" {
		rec.Scope = strings.Join(p.scopes, " ")
	}
	if tr.ExpiresIn > 0 {
		t := now.Add(time.Duration(tr.ExpiresIn) * time.Second)
		rec.ExpiresAt = &t
	}

	if err := m.creds.Upsert(ctx, rec); err != nil {
		m.logger.ErrorContext(ctx, "failed to store token record",
			slog.String("operation", "CompleteGrant"),
			slog.String("user_id", hs.userID),
			slog.String("service", service.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("storing token record: %w", err)
	}

	m.logger.InfoContext(ctx, "grant completed",
		slog.String("user_id", hs.userID),
		slog.String("service", service.String()),
		slog.Bool("has_refresh_token", rec.RefreshToken != ""),
	)
	return rec, nil
}

// GetValidToken returns a non-expired access token for (user, service),
// transparently refreshing and persisting first when the current token is
// expired but refreshable.
func (m *CredentialManager) GetValidToken(ctx context.Context, userID string, service domain.Service) (string, error) {
	if staticServices[service] {
		return "", nil
	}

	rec, err := m.creds.Get(ctx, userID, service)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("no credential for %s: %w", service, domain.ErrNoCredential)
		}
		return "", fmt.Errorf("fetching credential: %w", err)
	}

	if !rec.Expired(m.now()) {
		return rec.AccessToken, nil
	}
	if !rec.Refreshable() {
		return "", fmt.Errorf("token for %s expired with no refresh token: %w", service, domain.ErrNoCredential)
	}

	if err := m.refresh(ctx, rec); err != nil {
		return "", err
	}
	return rec.AccessToken, nil
}

// refresh exchanges the refresh token for a new access token and persists the
// updated record before the caller sees the new token.
func (m *CredentialManager) refresh(ctx context.Context, rec *credential.TokenRecord) error {
	p := oauthProviders[rec.Service]
	svcCfg := m.serviceConfig(rec.Service)

	form := url.Values{}
	form.Set("client_id", svcCfg.ClientID)
	form.Set("client_secret", svcCfg.ClientSecret)
	form.Set("refresh_token", rec.RefreshToken)
	form.Set("grant_type", "refresh_token")

	tr, err := m.postTokenForm(ctx, p.tokenURL, form)
	if err != nil {
		m.recordRefresh(ctx, rec.Service, false)
		m.logger.ErrorContext(ctx, "failed to refresh token",
			slog.String("operation", "GetValidToken"),
			slog.String("user_id", rec.UserID),
			slog.String("service", rec.Service.String()),
			slog.Any("error", err),
		)
		return fmt.Errorf("refreshing %s token: %w", rec.Service, err)
	}

	now := m.now().UTC()
	rec.AccessToken = tr.AccessToken
	if tr.RefreshToken != "" {
		// Some providers rotate the refresh token; others keep it.
		rec.RefreshToken = tr.RefreshToken
	}
	if tr.TokenType != "" {
		rec.TokenType = tr.TokenType
	}
	if tr.Scope != "" {
		rec.Scope = tr.Scope
	}
	rec.ExpiresAt = nil
	if tr.ExpiresIn > 0 {
		t := now.Add(time.Duration(tr.ExpiresIn) * time.Second)
		rec.ExpiresAt = &t
	}
	rec.UpdatedAt = now

	if err := m.creds.Upsert(ctx, rec); err != nil {
		m.recordRefresh(ctx, rec.Service, false)
		return fmt.Errorf("persisting refreshed token: %w", err)
	}

	m.recordRefresh(ctx, rec.Service, true)
	m.logger.InfoContext(ctx, "token refreshed",
		slog.String("user_id", rec.UserID),
		slog.String("service", rec.Service.String()),
	)
	return nil
}

// Disconnect revokes the provider token best-effort and deactivates the local
// record. Revocation failure is logged, never blocking the deactivation.
func (m *CredentialManager) Disconnect(ctx context.Context, userID string, service domain.Service) error {
	rec, err := m.creds.Get(ctx, userID, service)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("fetching credential: %w", err)
	}

	m.revoke(ctx, rec)

	if err := m.creds.Deactivate(ctx, userID, service); err != nil {
		m.logger.ErrorContext(ctx, "failed to deactivate credential",
			slog.String("operation", "Disconnect"),
			slog.String("user_id", userID),
			slog.String("service", service.String()),
			slog.Any("error", err),
		)
		return fmt.Errorf("deactivating credential: %w", err)
	}

	m.logger.InfoContext(ctx, "service disconnected",
		slog.String("user_id", userID),
		slog.String("service", service.String()),
	)
	return nil
}

// Connections lists the user's active token records with secrets blanked.
func (m *CredentialManager) Connections(ctx context.Context, userID string) ([]*credential.TokenRecord, error) {
	recs, err := m.creds.ListActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}

	out := make([]*credential.TokenRecord, len(recs))
	for i, r := range recs {
		c := *r
		c.AccessToken = ""
		c.RefreshToken = ""
		out[i] = &c
	}
	return out, nil
}

// revoke calls the provider's revoke endpoint. Providers without one are
// trivially successful.
func (m *CredentialManager) revoke(ctx context.Context, rec *credential.TokenRecord) {
	p, ok := oauthProviders[rec.Service]
	if !ok || p.revokeURL == "" {
		return
	}

	var (
		req *http.Request
		err error
	)
	if rec.Service == domain.ServiceSlack {
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, p.revokeURL, nil)
		if err == nil {
			req.Header.Set("Authorization", "Bearer "+rec.AccessToken)
		}
	} else {
		form := url.Values{}
		form.Set("token", rec.AccessToken)
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, p.revokeURL, strings.NewReader(form.Encode()))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to build revoke request",
			slog.String("service", rec.Service.String()),
			slog.Any("error", err),
		)
		return
	}

	resp, err := m.client.Do(ctx, req)
	if err != nil {
		m.logger.WarnContext(ctx, "failed to revoke token",
			slog.String("service", rec.Service.String()),
			slog.Any("error", err),
		)
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		m.logger.WarnContext(ctx, "revoke endpoint rejected token",
			slog.String("service", rec.Service.String()),
			slog.Int("status", resp.StatusCode),
		)
	}
}

// postTokenForm posts a form to a provider token endpoint and normalizes the
// reply. Any failure surfaces as a *domain.AdapterError.
func (m *CredentialManager) postTokenForm(ctx context.Context, endpoint string, form url.Values) (*tokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := m.client.Do(ctx, req)
	if err != nil {
		return nil, &domain.AdapterError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTokenResponseBytes))
	if err != nil {
		return nil, &domain.AdapterError{Status: resp.StatusCode, Message: "reading token response: " + err.Error()}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &domain.AdapterError{Status: resp.StatusCode, Message: "token endpoint returned " + resp.Status}
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, &domain.AdapterError{Status: resp.StatusCode, Message: "decoding token response: " + err.Error()}
	}
	if tr.Error != "" {
		msg := tr.Error
		if tr.ErrorDescription != "" {
			msg = tr.ErrorDescription
		}
		return nil, &domain.AdapterError{Status: resp.StatusCode, Message: msg}
	}
	if tr.AccessToken == "" {
		return nil, &domain.AdapterError{Status: resp.StatusCode, Message: "token response missing access_token"}
	}
	return &tr, nil
}

// providerMetadata extracts provider-specific extras worth keeping on the
// record.
func providerMetadata(service domain.Service, tr *tokenResponse) map[string]string {
	md := make(map[string]string)
	switch service {
	case domain.ServiceSlack:
		if tr.Team.ID != "" {
			md["team_id"] = tr.Team.ID
		}
		if tr.BotUserID != "" {
			md["bot_user_id"] = tr.BotUserID
		}
	case domain.ServiceJira:
		if tr.ResourceURL != "" {
			md["resource_url"] = tr.ResourceURL
		}
	}
	if len(md) == 0 {
		return nil
	}
	return md
}

func (m *CredentialManager) serviceConfig(service domain.Service) config.ServiceConfig {
	switch service {
	case domain.ServiceSlack:
		return m.services.Slack
	case domain.ServiceJira:
		return m.services.Jira
	case domain.ServiceS3:
		return m.services.S3
	case domain.ServiceGitHub:
		return m.services.GitHub
	default:
		return config.ServiceConfig{}
	}
}

func (m *CredentialManager) recordRefresh(ctx context.Context, service domain.Service, success bool) {
	if m.metrics == nil {
		return
	}

	result := "success"
	if !success {
		result = "error"
	}
	m.metrics.TokenRefreshTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrService.String(service.String()),
		telemetry.AttrResult.String(result),
	))
}
