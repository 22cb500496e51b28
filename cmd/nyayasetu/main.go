// File path: cmd/nyayasetu/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/nyayasetu/nyayasetu/internal/api"
	"github.com/nyayasetu/nyayasetu/internal/common"
	"github.com/nyayasetu/nyayasetu/internal/document"
	"github.com/nyayasetu/nyayasetu/internal/language"
	"github.com/nyayasetu/nyayasetu/internal/layout"
	"github.com/nyayasetu/nyayasetu/internal/llm"
	"github.com/nyayasetu/nyayasetu/internal/tool"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug("nyayasetu: .env file not loaded", "error", err)
	} else {
		logger.Info("nyayasetu: environment loaded from .env")
	}

	serve := flag.Bool("serve", false, "run the HTTP API instead of a one-shot generation")
	addr := flag.String("addr", ":8082", "listen address for -serve")
	outDir := flag.String("out", defaultOutputDir(), "directory for generated artifacts")
	languagesPath := flag.String("languages", strings.TrimSpace(os.Getenv("NYAYASETU_LANGUAGES")), "optional YAML file with additional language profiles")

	docType := flag.String("type", "", "document type: PIL, RTI, or Complaint")
	issue := flag.String("issue", "", "the issue or concern the document addresses")
	issueContext := flag.String("context", "", "additional context for the issue")
	name := flag.String("name", "", "name of the person filing the document")
	location := flag.String("location", "", `location, as "City, State" or a bare name`)
	contact := flag.String("contact", "", "optional contact number")
	lang := flag.String("lang", language.DefaultCode, "language code for the document")

	flag.Parse()

	registry := language.NewRegistry()
	if *languagesPath != "" {
		if err := registry.LoadOverlay(*languagesPath); err != nil {
			logger.Error("nyayasetu: language overlay failed", "path", *languagesPath, "error", err)
			os.Exit(1)
		}
	}

	provider := llm.NewProvider()
	toolkit, err := tool.New(provider, registry, layout.NewPDFRenderer(), *outDir)
	if err != nil {
		logger.Error("nyayasetu: toolkit init failed", "error", err)
		os.Exit(1)
	}

	if *serve {
		server := api.NewServer(toolkit, registry)
		logger.Info("nyayasetu: serving", "addr", *addr)
		if err := http.ListenAndServe(*addr, server); err != nil {
			logger.Error("nyayasetu: server stopped", "error", err)
			os.Exit(1)
		}
		return
	}

	typ, err := document.ParseType(*docType)
	if err != nil {
		logger.Error("nyayasetu: invalid -type", "error", err)
		flag.Usage()
		os.Exit(2)
	}
	req := document.Request{
		Issue:    *issue,
		Context:  *issueContext,
		Name:     *name,
		Location: *location,
		Contact:  *contact,
		Language: *lang,
	}
	result, err := toolkit.Generate(context.Background(), typ, req)
	if err != nil {
		logger.Error("nyayasetu: generation failed", "type", typ, "error", err)
		os.Exit(1)
	}
	fmt.Println(result.ArtifactPath)
}

func defaultOutputDir() string {
	if dir := strings.TrimSpace(os.Getenv("NYAYASETU_OUTPUT_DIR")); dir != "" {
		return dir
	}
	return tool.DefaultOutputDir
}
