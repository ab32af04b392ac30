package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pact-foundation/pact-go-match/dsl"
	"github.com/pact-foundation/pact-go-match/internal/matcherror"
	"github.com/pact-foundation/pact-go-match/internal/matching/httppart"
	"github.com/pact-foundation/pact-go-match/internal/matching/message"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pactmatch",
		Short: "Match HTTP requests/responses against a pact interaction's rules",
	}
	root.AddCommand(newMatchCmd(), newGenerateCmd())
	return root
}

func newMatchCmd() *cobra.Command {
	match := &cobra.Command{
		Use:   "match",
		Short: "Compare an actual interaction part against an expected one from a pact file",
	}
	match.AddCommand(newMatchRequestCmd(), newMatchResponseCmd())
	return match
}

func newMatchRequestCmd() *cobra.Command {
	var pactPath, actualPath string
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Match an actual request against the first interaction's expected request",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadRuntime(); err != nil {
				return err
			}
			interaction, err := loadInteraction(pactPath)
			if err != nil {
				return err
			}
			actual, err := loadHttpPart(actualPath)
			if err != nil {
				return err
			}
			mismatches := message.MatchRequest(interaction.Request.MatchingRules(), interaction.Request.ToHttpPart(), actual)
			return printMismatches(mismatches)
		},
	}
	cmd.Flags().StringVar(&pactPath, "pact", "", "path to a pact JSON document")
	cmd.Flags().StringVar(&actualPath, "actual", "", "path to the actual request, in httppart JSON shape")
	cmd.MarkFlagRequired("pact")    //nolint:errcheck
	cmd.MarkFlagRequired("actual") //nolint:errcheck
	return cmd
}

func newMatchResponseCmd() *cobra.Command {
	var pactPath, actualPath string
	cmd := &cobra.Command{
		Use:   "response",
		Short: "Match an actual response against the first interaction's expected response",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadRuntime(); err != nil {
				return err
			}
			interaction, err := loadInteraction(pactPath)
			if err != nil {
				return err
			}
			actual, err := loadHttpPart(actualPath)
			if err != nil {
				return err
			}
			mismatches := message.MatchResponse(interaction.Response.MatchingRules(), interaction.Response.ToHttpPart(), actual)
			return printMismatches(mismatches)
		},
	}
	cmd.Flags().StringVar(&pactPath, "pact", "", "path to a pact JSON document")
	cmd.Flags().StringVar(&actualPath, "actual", "", "path to the actual response, in httppart JSON shape")
	cmd.MarkFlagRequired("pact")    //nolint:errcheck
	cmd.MarkFlagRequired("actual") //nolint:errcheck
	return cmd
}

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Print the example body and matching rules a v3 DSL template would generate",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadRuntime(); err != nil {
				return err
			}
			fmt.Println(`generate consumes a Go-typed Matcher template via v3.Build; there is no` +
				` file format for it yet, so this subcommand is a placeholder for embedding pactmatch` +
				` into a consumer test's code generation step.`)
			return nil
		},
	}
}

func loadInteraction(path string) (*dsl.Interaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pact file: %w", err)
	}
	var pact dsl.Pact
	if err := json.Unmarshal(data, &pact); err != nil {
		return nil, matcherror.Wrap(matcherror.ErrPactDecode, "decoding pact file failed", err, path)
	}
	if len(pact.Interactions) == 0 {
		return nil, fmt.Errorf("pact file %s has no interactions", path)
	}
	return &pact.Interactions[0], nil
}

type httpPartFile struct {
	Method  string              `json:"method,omitempty"`
	Path    string              `json:"path,omitempty"`
	Status  int                 `json:"status,omitempty"`
	Headers map[string][]string `json:"headers,omitempty"`
	Query   map[string][]string `json:"query,omitempty"`
	Body    json.RawMessage     `json:"body,omitempty"`
}

func loadHttpPart(path string) (httppart.HttpPart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return httppart.HttpPart{}, fmt.Errorf("reading actual file: %w", err)
	}
	var f httpPartFile
	if err := json.Unmarshal(data, &f); err != nil {
		return httppart.HttpPart{}, matcherror.Wrap(matcherror.ErrBodyParse, "decoding actual file failed", err, path)
	}

	body := httppart.MissingBody()
	if len(f.Body) > 0 {
		body = httppart.PresentBody(f.Body, "application/json")
	}

	return httppart.HttpPart{
		Method:  f.Method,
		Path:    f.Path,
		Status:  f.Status,
		Headers: f.Headers,
		Query:   f.Query,
		Body:    body,
	}, nil
}

func printMismatches(mismatches []httppart.Mismatch) error {
	if len(mismatches) == 0 {
		fmt.Println("no mismatches")
		return nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(mismatches); err != nil {
		return fmt.Errorf("encoding mismatches: %w", err)
	}
	return fmt.Errorf("%d mismatch(es) found", len(mismatches))
}
