package mcpserver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerDocumentTools() {
	s.mcp.AddTool(mcp.NewTool("read_document",
		mcp.WithDescription("Read a document from the app's document storage"),
		mcp.WithString("path", mcp.Description("Document path relative to the documents directory"), mcp.Required()),
	), s.handleReadDocument)

	s.mcp.AddTool(mcp.NewTool("list_documents",
		mcp.WithDescription("List documents stored by the app, recursively"),
		mcp.WithString("dir", mcp.Description("Subdirectory to list (optional, defaults to the documents root)")),
	), s.handleListDocuments)
}

func (s *Server) handleReadDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := req.GetString("path", "")
	if path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if !filepath.IsLocal(path) {
		return nil, fmt.Errorf("path must stay inside the documents directory")
	}
	content, err := s.fs.ReadTextFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return textResult(content), nil
}

func (s *Server) handleListDocuments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir := req.GetString("dir", "")
	if dir != "" && !filepath.IsLocal(dir) {
		return nil, fmt.Errorf("dir must stay inside the documents directory")
	}

	type documentInfo struct {
		Path       string `json:"path"`
		SizeBytes  int64  `json:"sizeBytes"`
		ModifiedAt string `json:"modifiedAt"`
	}

	documents := []documentInfo{}
	root := filepath.Join(s.documentsDir, dir)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(s.documentsDir, path)
		if err != nil {
			return nil
		}
		documents = append(documents, documentInfo{
			Path:       rel,
			SizeBytes:  info.Size(),
			ModifiedAt: info.ModTime().UTC().Format(time.RFC3339),
		})
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return jsonResult(documents)
		}
		return nil, fmt.Errorf("walk documents: %w", err)
	}
	return jsonResult(documents)
}
