// File path: internal/generate/generator.go

// Package generate produces the named text fragments of a document by
// running a fixed, per-type sequence of instructions through the
// text-generation provider and normalizing each response.
package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/prompts"

	"github.com/nyayasetu/nyayasetu/internal/common"
	"github.com/nyayasetu/nyayasetu/internal/document"
	"github.com/nyayasetu/nyayasetu/internal/llm"
)

// rtiSubjectPrefix is the mandated opening of every RTI subject line. The
// model is instructed to use it; if it does not, the prefix is applied
// here.
const rtiSubjectPrefix = "RTI Application for"

type Generator struct {
	provider llm.Provider
}

func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// Generate runs the fixed step sequence for the document type and returns
// the fragment set. Steps run sequentially; the first provider failure or
// empty response aborts the invocation with a generation failure.
func (g *Generator) Generate(ctx context.Context, typ document.Type, req document.Request) (document.Fragments, error) {
	switch typ {
	case document.TypePIL:
		return g.generatePIL(ctx, req)
	case document.TypeRTI:
		return g.generateRTI(ctx, req)
	case document.TypeComplaint:
		return g.generateComplaint(ctx, req)
	}
	return nil, document.Fail(document.KindGenerationFailure, "generate", fmt.Errorf("unknown document type %q", typ))
}

func (g *Generator) generatePIL(ctx context.Context, req document.Request) (document.Fragments, error) {
	data := issueData(req)
	facts, err := g.completeBlock(ctx, "pil_facts", pilFactsPrompt, data)
	if err != nil {
		return nil, err
	}
	legal, err := g.completeBlock(ctx, "pil_legal_basis", pilLegalPrompt, data)
	if err != nil {
		return nil, err
	}
	prayers, err := g.completeList(ctx, "pil_prayers", pilPrayersPrompt, data)
	if err != nil {
		return nil, err
	}
	return document.Fragments{
		"issue_summary":  facts,
		"legal_insights": legal,
		"prayers":        prayers,
	}, nil
}

func (g *Generator) generateRTI(ctx context.Context, req document.Request) (document.Fragments, error) {
	data := issueData(req)
	subject, err := g.completeLine(ctx, "rti_subject", rtiSubjectPrompt, data)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(subject, rtiSubjectPrefix) {
		subject = rtiSubjectPrefix + " " + subject
	}
	intro, err := g.completeLine(ctx, "rti_introduction", rtiIntroPrompt, data)
	if err != nil {
		return nil, err
	}
	requests, err := g.completeList(ctx, "rti_requests", rtiRequestsPrompt, data)
	if err != nil {
		return nil, err
	}
	closing, err := g.completeLine(ctx, "rti_closing", rtiClosingPrompt, data)
	if err != nil {
		return nil, err
	}
	authority, err := g.completeLine(ctx, "rti_authority", rtiAuthorityPrompt, map[string]any{
		"subject": subject,
		"issue":   req.Issue,
	})
	if err != nil {
		return nil, err
	}
	return document.Fragments{
		"subject":       subject,
		"introduction":  intro,
		"info_requests": requests,
		"closing":       closing,
		"authority":     authority,
	}, nil
}

func (g *Generator) generateComplaint(ctx context.Context, req document.Request) (document.Fragments, error) {
	data := issueData(req)
	authority, err := g.completeLine(ctx, "complaint_authority", complaintAuthorityPrompt, data)
	if err != nil {
		return nil, err
	}
	facts, err := g.completeBlock(ctx, "complaint_facts", complaintFactsPrompt, data)
	if err != nil {
		return nil, err
	}
	subject, err := g.completeLine(ctx, "complaint_subject", complaintSubjectPrompt, data)
	if err != nil {
		return nil, err
	}
	intro, err := g.completeLine(ctx, "complaint_introduction", complaintIntroPrompt, data)
	if err != nil {
		return nil, err
	}
	closing, err := g.completeLine(ctx, "complaint_closing", complaintClosingPrompt, data)
	if err != nil {
		return nil, err
	}
	grievances, err := g.completeList(ctx, "complaint_grievances", complaintGrievancesPrompt, data)
	if err != nil {
		return nil, err
	}
	demands, err := g.completeList(ctx, "complaint_demands", complaintDemandsPrompt, data)
	if err != nil {
		return nil, err
	}
	return document.Fragments{
		"authority":     authority,
		"issue_summary": facts,
		"subject":       subject,
		"introduction":  intro,
		"closing":       closing,
		"grievances":    grievances,
		"demands":       demands,
	}, nil
}

// Respondents derives the PIL respondent list from the petition's city and
// state. The list is deterministic, not generated.
func Respondents(city, state string) []string {
	return renumber([]string{
		fmt.Sprintf("State of %s", state),
		fmt.Sprintf("%s Pollution Control Committee", state),
		"Ministry of Environment, Forest and Climate Change",
		"Central Pollution Control Board",
		fmt.Sprintf("Municipal Corporation of %s", city),
		fmt.Sprintf("%s Development Authority", city),
	})
}

func (g *Generator) complete(ctx context.Context, step string, tpl prompts.PromptTemplate, data map[string]any) (string, error) {
	logger := common.Logger()
	instruction, err := tpl.Format(data)
	if err != nil {
		return "", document.Fail(document.KindGenerationFailure, step, fmt.Errorf("build instruction: %w", err))
	}
	logger.Debug("generate: running step", "step", step, "provider", g.provider.Name())
	response, err := g.provider.Complete(ctx, instruction)
	if err != nil {
		logger.Error("generate: step failed", "step", step, "error", err)
		return "", document.Fail(document.KindGenerationFailure, step, err)
	}
	if strings.TrimSpace(response) == "" {
		return "", document.Fail(document.KindGenerationFailure, step, fmt.Errorf("empty response"))
	}
	return response, nil
}

// completeLine returns the trimmed response as a single text fragment.
func (g *Generator) completeLine(ctx context.Context, step string, tpl prompts.PromptTemplate, data map[string]any) (string, error) {
	response, err := g.complete(ctx, step, tpl, data)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(response), nil
}

// completeBlock returns the cleaned response as a multi-line fragment.
func (g *Generator) completeBlock(ctx context.Context, step string, tpl prompts.PromptTemplate, data map[string]any) (string, error) {
	response, err := g.complete(ctx, step, tpl, data)
	if err != nil {
		return "", err
	}
	return cleanBlock(response), nil
}

// completeList returns the cleaned response as a renumbered list fragment.
func (g *Generator) completeList(ctx context.Context, step string, tpl prompts.PromptTemplate, data map[string]any) ([]string, error) {
	response, err := g.complete(ctx, step, tpl, data)
	if err != nil {
		return nil, err
	}
	return renumber(cleanLines(response)), nil
}

func issueData(req document.Request) map[string]any {
	return map[string]any{"issue": req.Issue, "context": req.Context}
}
