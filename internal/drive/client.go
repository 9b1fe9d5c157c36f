package drive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	// FolderMimeType is the MIME type for Google Drive folders.
	FolderMimeType = "application/vnd.google-apps.folder"

	// fileFields is the field projection requested for file metadata.
	fileFields = "id, name, mimeType, size, createdTime, modifiedTime, webViewLink, webContentLink, parents, owners, shared, trashed"
)

// Client wraps the Google Drive API service.
type Client struct {
	svc *drive.Service
}

// NewClient creates a Drive client from pre-resolved client options.
func NewClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// SearchFiles searches for files matching a Drive query expression,
// e.g. "name contains 'report' and mimeType != 'application/vnd.google-apps.folder'".
// An empty query lists recent files.
func (c *Client) SearchFiles(ctx context.Context, query string, maxResults int64) ([]FileInfo, error) {
	call := c.svc.Files.List().
		Fields("nextPageToken", "files(id, name, mimeType, size, createdTime, modifiedTime, webViewLink, parents, shared, trashed)").
		OrderBy("modifiedTime desc")

	if query != "" {
		call = call.Q(query)
	}
	if maxResults > 0 {
		call = call.PageSize(maxResults)
	}

	var files []FileInfo
	err := call.Pages(ctx, func(resp *drive.FileList) error {
		for _, f := range resp.Files {
			files = append(files, toFileInfo(f))
		}
		if maxResults > 0 && int64(len(files)) >= maxResults {
			files = files[:maxResults]
			return errStopPaging
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopPaging) {
		return nil, fmt.Errorf("failed to search files: %w", err)
	}

	return files, nil
}

// CreateFolder creates a folder, optionally inside a parent folder.
func (c *Client) CreateFolder(ctx context.Context, name, parentID string) (*FileInfo, error) {
	folder := &drive.File{
		Name:     name,
		MimeType: FolderMimeType,
	}
	if parentID != "" {
		folder.Parents = []string{parentID}
	}

	created, err := c.svc.Files.Create(folder).Fields(fileFields).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	info := toFileInfo(created)
	return &info, nil
}

// UploadFile uploads content as a new file, optionally inside a parent
// folder. mimeType describes the uploaded content.
func (c *Client) UploadFile(ctx context.Context, name, mimeType string, content io.Reader, parentID string) (*FileInfo, error) {
	file := &drive.File{Name: name}
	if parentID != "" {
		file.Parents = []string{parentID}
	}

	call := c.svc.Files.Create(file).Fields(fileFields).Context(ctx)
	if mimeType != "" {
		call = call.Media(content, googleapi.ContentType(mimeType))
	} else {
		call = call.Media(content)
	}

	created, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	info := toFileInfo(created)
	return &info, nil
}

// MoveFile moves a file to a new parent folder, detaching it from its
// current parents.
func (c *Client) MoveFile(ctx context.Context, fileID, newParentID string) (*FileInfo, error) {
	current, err := c.svc.Files.Get(fileID).Fields("parents").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get current parents: %w", err)
	}

	call := c.svc.Files.Update(fileID, nil).
		AddParents(newParentID).
		Fields(fileFields).
		Context(ctx)
	if len(current.Parents) > 0 {
		call = call.RemoveParents(strings.Join(current.Parents, ","))
	}

	moved, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to move file: %w", err)
	}

	info := toFileInfo(moved)
	return &info, nil
}

// RenameFile renames a file.
func (c *Client) RenameFile(ctx context.Context, fileID, newName string) (*FileInfo, error) {
	renamed, err := c.svc.Files.Update(fileID, &drive.File{Name: newName}).
		Fields(fileFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to rename file: %w", err)
	}

	info := toFileInfo(renamed)
	return &info, nil
}

// DeleteFile permanently deletes a file, bypassing the trash.
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	if err := c.svc.Files.Delete(fileID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetFileContent downloads the content of a file. Google-native documents
// (Docs, Sheets, Slides) are exported as plain text or CSV; binary files
// are downloaded as-is.
func (c *Client) GetFileContent(ctx context.Context, fileID string) ([]byte, string, error) {
	meta, err := c.svc.Files.Get(fileID).Fields("mimeType, name").Context(ctx).Do()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get file metadata: %w", err)
	}

	if exportMime, ok := exportMimeTypes[meta.MimeType]; ok {
		resp, err := c.svc.Files.Export(fileID, exportMime).Context(ctx).Download()
		if err != nil {
			return nil, "", fmt.Errorf("failed to export file: %w", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read exported content: %w", err)
		}
		return data, exportMime, nil
	}

	resp, err := c.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, "", fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file content: %w", err)
	}
	return data, meta.MimeType, nil
}

// ShareFile grants a user access to a file. Role is one of "reader",
// "commenter", "writer" or "owner". sendNotification controls the
// notification email.
func (c *Client) ShareFile(ctx context.Context, fileID, email, role string, sendNotification bool) (*Permission, error) {
	perm := &drive.Permission{
		Type:         "user",
		Role:         role,
		EmailAddress: email,
	}

	call := c.svc.Permissions.Create(fileID, perm).
		SendNotificationEmail(sendNotification).
		Fields("id, type, role, emailAddress").
		Context(ctx)
	if role == "owner" {
		call = call.TransferOwnership(true)
	}

	created, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to share file: %w", err)
	}

	return &Permission{
		ID:           created.Id,
		Type:         created.Type,
		Role:         created.Role,
		EmailAddress: created.EmailAddress,
	}, nil
}

// GetFileMetadata retrieves full metadata for a file, including its
// permissions.
func (c *Client) GetFileMetadata(ctx context.Context, fileID string) (*FileInfo, error) {
	f, err := c.svc.Files.Get(fileID).
		Fields(fileFields + ", permissions(id, type, role, emailAddress)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get file metadata: %w", err)
	}

	info := toFileInfo(f)
	for _, p := range f.Permissions {
		info.Permissions = append(info.Permissions, Permission{
			ID:           p.Id,
			Type:         p.Type,
			Role:         p.Role,
			EmailAddress: p.EmailAddress,
		})
	}

	return &info, nil
}

// exportMimeTypes maps Google-native document types to their plain export
// formats.
var exportMimeTypes = map[string]string{
	"application/vnd.google-apps.document":     "text/plain",
	"application/vnd.google-apps.spreadsheet":  "text/csv",
	"application/vnd.google-apps.presentation": "text/plain",
	"application/vnd.google-apps.drawing":      "image/png",
}

// errStopPaging stops Pages iteration once maxResults entries are collected.
var errStopPaging = errors.New("stop paging")
