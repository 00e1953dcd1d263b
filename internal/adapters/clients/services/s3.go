package services

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/platform/config"
	"github.com/conductorhq/conductor/internal/platform/httpclient"
	"github.com/conductorhq/conductor/internal/ports"
)

// Compile-time interface check.
var _ ports.ServiceAdapter = (*S3)(nil)

// S3 executes object-storage capabilities against an S3-compatible endpoint
// using SigV4 request signing with statically configured credentials. Unlike
// the OAuth-backed adapters, the per-user bearer token is empty and ignored.
type S3 struct {
	client    *httpclient.Client
	accessKey string
	secretKey string
	region    string
	bucket    string
	logger    *slog.Logger
	now       func() time.Time
}

// NewS3 creates the S3 adapter. The client's base URL is the bucket endpoint
// (virtual-hosted or path-style); cfg supplies the static key pair, region,
// and bucket name.
func NewS3(client *httpclient.Client, cfg *config.ServiceConfig, logger *slog.Logger) *S3 {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	return &S3{
		client:    client,
		accessKey: cfg.ClientID,
		secretKey: cfg.ClientSecret,
		region:    region,
		bucket:    cfg.Bucket,
		logger:    logger,
		now:       time.Now,
	}
}

// Service identifies the adapter's target.
func (a *S3) Service() domain.Service {
	return domain.ServiceS3
}

// Invoke executes one S3 capability.
func (a *S3) Invoke(ctx context.Context, function string, args map[string]any, _ string) (map[string]any, error) {
	switch function {
	case "upload_to_s3":
		return a.upload(ctx, args)
	default:
		return nil, unsupported(domain.ServiceS3, function)
	}
}

// InvokeCompensation executes one recorded S3 compensation.
func (a *S3) InvokeCompensation(ctx context.Context, function string, args map[string]any, _ string) (map[string]any, error) {
	switch function {
	case "delete_s3_object":
		return a.deleteObject(ctx, args)
	default:
		return nil, unsupported(domain.ServiceS3, function)
	}
}

func (a *S3) upload(ctx context.Context, args map[string]any) (map[string]any, error) {
	key := stringArg(args, "key")
	content := stringArg(args, "content")
	if key == "" || content == "" {
		return nil, &domain.AdapterError{Message: "content and key are required"}
	}
	contentType := stringArgDefault(args, "content_type", "text/plain")

	objectURL := a.objectURL(key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, objectURL, strings.NewReader(content))
	if err != nil {
		return nil, &domain.AdapterError{Message: "creating PUT request: " + err.Error()}
	}
	req.Header.Set("Content-Type", contentType)
	signV4(req, a.accessKey, a.secretKey, a.region, hexSHA256([]byte(content)), a.now())

	if err := a.execute(ctx, req); err != nil {
		return nil, err
	}

	return map[string]any{
		"bucket":       a.bucket,
		"key":          key,
		"url":          objectURL,
		"content_type": contentType,
		"size":         len(content),
	}, nil
}

func (a *S3) deleteObject(ctx context.Context, args map[string]any) (map[string]any, error) {
	key := stringArg(args, "key")
	if key == "" {
		return nil, &domain.AdapterError{Message: "key is required"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, a.objectURL(key), http.NoBody)
	if err != nil {
		return nil, &domain.AdapterError{Message: "creating DELETE request: " + err.Error()}
	}
	signV4(req, a.accessKey, a.secretKey, a.region, hexSHA256(nil), a.now())

	if err := a.execute(ctx, req); err != nil {
		return nil, err
	}

	return map[string]any{
		"deleted": true,
		"bucket":  a.bucket,
		"key":     key,
	}, nil
}

// execute sends a signed request and translates any failure. S3 error bodies
// are XML; a snippet rides along in the message.
func (a *S3) execute(ctx context.Context, req *http.Request) error {
	resp, err := a.client.Do(ctx, req)
	if err != nil && resp == nil {
		a.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return &domain.AdapterError{Message: err.Error()}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			a.logger.WarnContext(ctx, "failed to close response body",
				slog.String("error", cerr.Error()),
			)
		}
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &domain.AdapterError{
			Status:  resp.StatusCode,
			Message: strings.TrimSpace(string(snippet)),
		}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// objectURL builds the full object URL, escaping each key segment while
// keeping the separators.
func (a *S3) objectURL(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return a.client.BaseURL() + "/" + strings.Join(segments, "/")
}
