package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/developerdao/schoolofcode/internal/services/web/module"
)

// ComposeInput carries the modules mounted on the root mux.
type ComposeInput struct {
	Modules []module.Module
}

// Compose builds a root handler from modules. Each module owns one canonical
// prefix and duplicates are rejected.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		if previous, ok := seen[prefix]; ok {
			return nil, fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
		}
		seen[prefix] = feature.ID()
		root.Handle(prefix, mount.Handler)
	}

	return root, nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := mount.Prefix
	if prefix == "" {
		return module.Mount{}, "", fmt.Errorf("mount module %q: prefix is required", feature.ID())
	}
	if !isCanonicalPrefix(prefix) {
		return module.Mount{}, "", fmt.Errorf("mount module %q: invalid prefix %q", feature.ID(), prefix)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func isCanonicalPrefix(prefix string) bool {
	return prefix == strings.TrimSpace(prefix) &&
		strings.HasPrefix(prefix, "/") &&
		strings.HasSuffix(prefix, "/")
}
