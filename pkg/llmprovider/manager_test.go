package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name      string
	model     string
	err       error
	failFirst int
	response  *Response
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.err != nil && (m.failFirst == 0 || m.callCount <= m.failFirst) {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoMessages = append(m.infoMessages, template)
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func okResponse(name string) *Response {
	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: "Hello from " + name}}},
		ProviderName: name,
		ModelName:    name + "-model",
		Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
}

var errMock = errors.New("mock provider error")

func TestGenerateContent(t *testing.T) {
	permanent := &ProviderError{Provider: "primary", Temporary: false, Err: errors.New("bad key")}

	tests := []struct {
		name          string
		primary       *mockProvider
		secondary     *mockProvider
		fallback      bool
		wantProvider  string
		wantErr       error
		wantPrimary   int
		wantSecondary int
		wantInfo      int
		wantWarn      int
	}{
		{
			name:         "success with primary",
			primary:      &mockProvider{name: "primary", response: okResponse("primary")},
			secondary:    &mockProvider{name: "secondary", response: okResponse("secondary")},
			fallback:     true,
			wantProvider: "primary",
			wantPrimary:  1,
			wantInfo:     1,
		},
		{
			name:         "retry recovers on primary",
			primary:      &mockProvider{name: "primary", err: errMock, failFirst: 1, response: okResponse("primary")},
			secondary:    &mockProvider{name: "secondary", response: okResponse("secondary")},
			fallback:     true,
			wantProvider: "primary",
			wantPrimary:  2,
			wantInfo:     1,
		},
		{
			name:          "fallback to secondary",
			primary:       &mockProvider{name: "primary", err: errMock},
			secondary:     &mockProvider{name: "secondary", response: okResponse("secondary")},
			fallback:      true,
			wantProvider:  "secondary",
			wantPrimary:   2,
			wantSecondary: 1,
			wantInfo:      1,
			wantWarn:      1,
		},
		{
			name:          "permanent error skips retries",
			primary:       &mockProvider{name: "primary", err: permanent},
			secondary:     &mockProvider{name: "secondary", response: okResponse("secondary")},
			fallback:      true,
			wantProvider:  "secondary",
			wantPrimary:   1,
			wantSecondary: 1,
			wantInfo:      1,
			wantWarn:      1,
		},
		{
			name:          "all providers fail",
			primary:       &mockProvider{name: "primary", err: errMock},
			secondary:     &mockProvider{name: "secondary", err: errMock},
			fallback:      true,
			wantErr:       ErrAllProvidersFailed,
			wantPrimary:   2,
			wantSecondary: 2,
			wantWarn:      2,
		},
		{
			name:        "no fallback when disabled",
			primary:     &mockProvider{name: "primary", err: errMock},
			secondary:   &mockProvider{name: "secondary", response: okResponse("secondary")},
			fallback:    false,
			wantErr:     ErrAllProvidersFailed,
			wantPrimary: 2,
			wantWarn:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &mockLogger{}
			manager := NewManager([]Provider{tt.primary, tt.secondary}, &Config{
				FallbackEnabled: tt.fallback,
				RetryAttempts:   2,
				RetryDelay:      time.Millisecond,
			}, logger)

			resp, err := manager.GenerateContent(context.Background(), UserText("", "Hello"))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				if resp != nil {
					t.Errorf("expected nil response, got %+v", resp)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if resp.ProviderName != tt.wantProvider {
					t.Errorf("provider = %s, want %s", resp.ProviderName, tt.wantProvider)
				}
			}

			if tt.primary.callCount != tt.wantPrimary {
				t.Errorf("primary calls = %d, want %d", tt.primary.callCount, tt.wantPrimary)
			}
			if tt.secondary.callCount != tt.wantSecondary {
				t.Errorf("secondary calls = %d, want %d", tt.secondary.callCount, tt.wantSecondary)
			}
			if len(logger.infoMessages) != tt.wantInfo {
				t.Errorf("info logs = %d, want %d", len(logger.infoMessages), tt.wantInfo)
			}
			if len(logger.warnMessages) != tt.wantWarn {
				t.Errorf("warn logs = %d, want %d", len(logger.warnMessages), tt.wantWarn)
			}
		})
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager(nil, &Config{RetryAttempts: 3}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), UserText("", "Hello"))
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
}

func TestGenerateContent_CancelledContext(t *testing.T) {
	primary := &mockProvider{name: "primary", response: okResponse("primary")}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 1}, &mockLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := manager.GenerateContent(ctx, UserText("", "Hello")); !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("err = %v, want ErrAllProvidersFailed", err)
	}
	if primary.callCount != 0 {
		t.Errorf("provider called %d times after cancel", primary.callCount)
	}
}

func TestResponseText(t *testing.T) {
	resp := &Response{Content: Message{Parts: []Part{{Text: "a"}, {Text: "b"}}}}
	if got := resp.Text(); got != "ab" {
		t.Errorf("Text() = %q", got)
	}
	var nilResp *Response
	if nilResp.Text() != "" {
		t.Errorf("nil Text() should be empty")
	}
}
