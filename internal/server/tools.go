package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"moddoc/internal/doc"
	"moddoc/internal/docgen"
)

// Arguments structs

type DocArgs struct {
	Entry   string `json:"entry" jsonschema:"description:Module path or URL to document; empty documents the built-in declarations"`
	Filter  string `json:"filter" jsonschema:"description:Optional dotted-path symbol filter"`
	Private bool   `json:"private" jsonschema:"description:Include non-exported declarations"`
	Reload  bool   `json:"reload" jsonschema:"description:Bypass the remote module cache"`
}

type SymbolArgs struct {
	Entry  string `json:"entry" jsonschema:"description:Module path or URL to search; empty searches the built-in declarations"`
	Symbol string `json:"symbol" jsonschema:"required,description:Dotted-path name of the symbol to look up"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "doc",
		Description: "Generates JSON documentation for a module's exported symbols",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args DocArgs) (*mcp.CallToolResult, any, error) {
		nodes, err := docgen.Generate(ctx, docgen.Options{
			Entry:   args.Entry,
			Private: args.Private,
			Reload:  args.Reload,
			Logger:  s.logger,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("Doc generation failed: %v", err)), nil, nil
		}

		if args.Filter != "" {
			nodes = doc.FindNodesByName(doc.WithoutImports(nodes), args.Filter)
			if len(nodes) == 0 {
				return errorResult(fmt.Sprintf("Node %s was not found", args.Filter)), nil, nil
			}
		}

		jsonBytes, err := json.MarshalIndent(nodes, "", "  ")
		if err != nil {
			return errorResult(fmt.Sprintf("Failed to encode nodes: %v", err)), nil, nil
		}
		return textResult(string(jsonBytes)), nil, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "symbol",
		Description: "Looks up one symbol and returns its signature and documentation",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args SymbolArgs) (*mcp.CallToolResult, any, error) {
		nodes, err := docgen.Generate(ctx, docgen.Options{Entry: args.Entry, Logger: s.logger})
		if err != nil {
			return errorResult(fmt.Sprintf("Doc generation failed: %v", err)), nil, nil
		}

		matches := doc.FindNodesByName(doc.WithoutImports(nodes), args.Symbol)
		if len(matches) == 0 {
			return textResult("Symbol not found."), nil, nil
		}

		type SymbolInfo struct {
			Signature string       `json:"signature"`
			Location  doc.Location `json:"location"`
			Doc       string       `json:"doc,omitempty"`
		}
		var info []SymbolInfo
		for _, n := range matches {
			si := SymbolInfo{Signature: n.Signature, Location: n.Location}
			if n.JSDoc != nil {
				si.Doc = n.JSDoc.Doc
			}
			info = append(info, si)
		}

		jsonBytes, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return errorResult(fmt.Sprintf("Failed to encode symbols: %v", err)), nil, nil
		}
		return textResult(string(jsonBytes)), nil, nil
	})
}
