// Package app composes web modules into the root HTTP handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/jobportal/internal/services/web/module"
	"github.com/louisbranch/jobportal/internal/services/web/platform/httpx"
	"github.com/louisbranch/jobportal/internal/services/web/platform/requestmeta"
)

// adminPrefix groups recruiter-facing modules.
const adminPrefix = "/admin/"

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	PublicModules       []module.Module
	AdminModules        []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Compose builds a root HTTP handler from module groups.
func Compose(input ComposeInput) (*http.ServeMux, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.PublicModules {
		if feature == nil {
			return nil, fmt.Errorf("public module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		if isAdminPrefix(prefix) {
			return nil, fmt.Errorf("module %q has admin prefix %q in public group", feature.ID(), prefix)
		}
		if err := mountWithAlias(root, feature, mount, prefix, seen, nil); err != nil {
			return nil, err
		}
	}

	sameOrigin := httpx.RequireSameOrigin(input.RequestSchemePolicy)
	for _, feature := range input.AdminModules {
		if feature == nil {
			return nil, fmt.Errorf("admin module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		if !isAdminPrefix(prefix) {
			return nil, fmt.Errorf("module %q must mount under %s, got %q", feature.ID(), adminPrefix, prefix)
		}
		if err := mountWithAlias(root, feature, mount, prefix, seen, sameOrigin); err != nil {
			return nil, err
		}
	}

	return root, nil
}

func mountWithAlias(
	root *http.ServeMux,
	feature module.Module,
	mount module.Mount,
	prefix string,
	seen map[string]string,
	wrap httpx.Middleware,
) error {
	if err := mountModule(root, feature, mount, prefix, seen, wrap); err != nil {
		return err
	}
	if alias := slashlessPrefixAlias(prefix); alias != "" {
		return mountModule(root, feature, mount, alias, seen, wrap)
	}
	return nil
}

func mountModule(
	root *http.ServeMux,
	feature module.Module,
	mount module.Mount,
	prefix string,
	seen map[string]string,
	wrap httpx.Middleware,
) error {
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()

	handler := mount.Handler
	if wrap != nil {
		handler = wrap(handler)
	}
	root.Handle(prefix, handler)
	return nil
}

func isAdminPrefix(prefix string) bool {
	return strings.HasPrefix(prefix, adminPrefix)
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := mount.Prefix
	if err := validatePrefix(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}

// slashlessPrefixAlias lets "/jobs" reach the module mounted at "/jobs/"
// without a mux redirect.
func slashlessPrefixAlias(prefix string) string {
	if prefix == "/" || !strings.HasSuffix(prefix, "/") {
		return ""
	}
	return strings.TrimSuffix(prefix, "/")
}
