package gmail

import (
	"context"
	"fmt"

	gmail "google.golang.org/api/gmail/v1"
)

// ListLabels lists all labels in the mailbox, system and user-defined.
func (c *Client) ListLabels(ctx context.Context) ([]LabelInfo, error) {
	resp, err := c.svc.Labels.List("me").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}

	var labels []LabelInfo
	for _, l := range resp.Labels {
		labels = append(labels, toLabelInfo(l))
	}

	return labels, nil
}

// CreateLabel creates a user label. Visibility values follow the Gmail API
// ("labelShow", "labelHide", "show", "hide"); empty uses the defaults.
func (c *Client) CreateLabel(ctx context.Context, name, labelListVisibility, messageListVisibility string) (*LabelInfo, error) {
	label := &gmail.Label{
		Name:                  name,
		LabelListVisibility:   labelListVisibility,
		MessageListVisibility: messageListVisibility,
	}

	created, err := c.svc.Labels.Create("me", label).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create label: %w", err)
	}

	info := toLabelInfo(created)
	return &info, nil
}

// UpdateLabel renames a user label or changes its visibility. Empty fields
// are left unchanged.
func (c *Client) UpdateLabel(ctx context.Context, labelID, name, labelListVisibility, messageListVisibility string) (*LabelInfo, error) {
	patch := &gmail.Label{
		Name:                  name,
		LabelListVisibility:   labelListVisibility,
		MessageListVisibility: messageListVisibility,
	}

	updated, err := c.svc.Labels.Patch("me", labelID, patch).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update label: %w", err)
	}

	info := toLabelInfo(updated)
	return &info, nil
}

// DeleteLabel deletes a user label. Messages keep their other labels.
func (c *Client) DeleteLabel(ctx context.Context, labelID string) error {
	if err := c.svc.Labels.Delete("me", labelID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete label: %w", err)
	}
	return nil
}

func toLabelInfo(l *gmail.Label) LabelInfo {
	return LabelInfo{
		ID:                    l.Id,
		Name:                  l.Name,
		Type:                  l.Type,
		MessagesTotal:         l.MessagesTotal,
		MessagesUnread:        l.MessagesUnread,
		LabelListVisibility:   l.LabelListVisibility,
		MessageListVisibility: l.MessageListVisibility,
	}
}
