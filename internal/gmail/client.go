package gmail

import (
	"context"
	"errors"
	"fmt"

	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Client wraps the Gmail Users service.
type Client struct {
	svc *gmail.UsersService
}

// NewClient creates a Gmail client from pre-resolved client options.
func NewClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}
	return &Client{svc: svc.Users}, nil
}

// GetMessage retrieves a message with parsed headers and body.
func (c *Client) GetMessage(ctx context.Context, messageID string) (*MessageSummary, error) {
	msg, err := c.svc.Messages.Get("me", messageID).Format("full").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", messageID, err)
	}

	summary := toMessageSummary(msg)
	summary.Body = messageBody(msg, "text/plain")
	if summary.Body == "" {
		summary.Body = messageBody(msg, "text/html")
	}

	return &summary, nil
}

// ListMessages lists messages matching a Gmail search query,
// e.g. "from:alerts@example.com is:unread".
func (c *Client) ListMessages(ctx context.Context, query string, labelIDs []string, maxResults int64) ([]MessageSummary, error) {
	call := c.svc.Messages.List("me")
	if query != "" {
		call = call.Q(query)
	}
	if len(labelIDs) > 0 {
		call = call.LabelIds(labelIDs...)
	}
	if maxResults > 0 {
		call = call.MaxResults(maxResults)
	}

	var summaries []MessageSummary
	err := call.Pages(ctx, func(resp *gmail.ListMessagesResponse) error {
		for _, ref := range resp.Messages {
			msg, err := c.svc.Messages.Get("me", ref.Id).Format("metadata").
				MetadataHeaders("From", "To", "Subject", "Date").
				Context(ctx).
				Do()
			if err != nil {
				return fmt.Errorf("failed to get message %s: %w", ref.Id, err)
			}
			summaries = append(summaries, toMessageSummary(msg))
			if maxResults > 0 && int64(len(summaries)) >= maxResults {
				return errStopPaging
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopPaging) {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return summaries, nil
}

// GetThread retrieves all messages of a conversation thread.
func (c *Client) GetThread(ctx context.Context, threadID string) (*ThreadSummary, error) {
	thread, err := c.svc.Threads.Get("me", threadID).Format("full").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get thread %s: %w", threadID, err)
	}

	summary := &ThreadSummary{
		ID:      thread.Id,
		Snippet: thread.Snippet,
	}
	for _, msg := range thread.Messages {
		ms := toMessageSummary(msg)
		ms.Body = messageBody(msg, "text/plain")
		summary.Messages = append(summary.Messages, ms)
	}

	return summary, nil
}

// ListThreads lists conversation threads matching a Gmail search query.
func (c *Client) ListThreads(ctx context.Context, query string, labelIDs []string, maxResults int64) ([]ThreadSummary, error) {
	call := c.svc.Threads.List("me")
	if query != "" {
		call = call.Q(query)
	}
	if len(labelIDs) > 0 {
		call = call.LabelIds(labelIDs...)
	}
	if maxResults > 0 {
		call = call.MaxResults(maxResults)
	}

	var threads []ThreadSummary
	err := call.Pages(ctx, func(resp *gmail.ListThreadsResponse) error {
		for _, t := range resp.Threads {
			threads = append(threads, ThreadSummary{
				ID:      t.Id,
				Snippet: t.Snippet,
			})
			if maxResults > 0 && int64(len(threads)) >= maxResults {
				return errStopPaging
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopPaging) {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}

	return threads, nil
}

// BatchModify adds and removes labels on a set of messages in one call.
func (c *Client) BatchModify(ctx context.Context, messageIDs, addLabelIDs, removeLabelIDs []string) error {
	if len(messageIDs) == 0 {
		return fmt.Errorf("no message IDs given")
	}

	err := c.svc.Messages.BatchModify("me", &gmail.BatchModifyMessagesRequest{
		Ids:            messageIDs,
		AddLabelIds:    addLabelIDs,
		RemoveLabelIds: removeLabelIDs,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to batch-modify messages: %w", err)
	}

	return nil
}

// BatchDelete permanently deletes a set of messages, bypassing the trash.
func (c *Client) BatchDelete(ctx context.Context, messageIDs []string) error {
	if len(messageIDs) == 0 {
		return fmt.Errorf("no message IDs given")
	}

	err := c.svc.Messages.BatchDelete("me", &gmail.BatchDeleteMessagesRequest{
		Ids: messageIDs,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to batch-delete messages: %w", err)
	}

	return nil
}

// errStopPaging stops Pages iteration once maxResults entries are collected.
var errStopPaging = errors.New("stop paging")
