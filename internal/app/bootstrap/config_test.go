package bootstrap_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/waffle/config"
	"github.com/xunman0/BarrierLog/internal/app/bootstrap"
	"go.uber.org/zap"
)

func validAppConfig() bootstrap.AppConfig {
	return bootstrap.AppConfig{
		JotFormAPIKey: "key",
		JotFormFormID: "9001",
		PageSize:      100,
		MaxPages:      10,
	}
}

func TestValidateConfig(t *testing.T) {
	logger := zap.NewNop()
	coreCfg := &config.CoreConfig{}

	cases := []struct {
		name    string
		mutate  func(*bootstrap.AppConfig)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *bootstrap.AppConfig) {},
		},
		{
			name:    "missing api key",
			mutate:  func(c *bootstrap.AppConfig) { c.JotFormAPIKey = "" },
			wantErr: "jotform_api_key",
		},
		{
			name:    "missing form id",
			mutate:  func(c *bootstrap.AppConfig) { c.JotFormFormID = "" },
			wantErr: "jotform_form_id",
		},
		{
			name:    "zero page size",
			mutate:  func(c *bootstrap.AppConfig) { c.PageSize = 0 },
			wantErr: "page_size",
		},
		{
			name:    "negative max pages",
			mutate:  func(c *bootstrap.AppConfig) { c.MaxPages = -1 },
			wantErr: "max_pages",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appCfg := validAppConfig()
			tc.mutate(&appCfg)

			err := bootstrap.ValidateConfig(coreCfg, appCfg, logger)
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateConfig() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateConfig() accepted an invalid config")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}
