// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"profseq/internal/pipeline": {
			"profseq/internal/app", "profseq/internal/cli",
			"profseq/internal/writers", "profseq/internal/output", "profseq/cmd/",
		},
		"profseq/internal/writers": {
			"profseq/internal/app", "profseq/internal/cli",
			"profseq/internal/pipeline", "profseq/cmd/",
		},
		"profseq/internal/output": {
			"profseq/internal/app", "profseq/internal/cli",
			"profseq/internal/pipeline", "profseq/internal/writers", "profseq/cmd/",
		},
		"profseq/internal/config": {
			"profseq/internal/app", "profseq/internal/cli", "profseq/cmd/",
		},
		"profseq/pkg/": {
			"profseq/internal/", "profseq/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "profseq/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "profseq/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
