package upstream

import (
	"context"
	"fmt"

	"github.com/cloudflare/cloudflare-go/v4"
	"github.com/cloudflare/cloudflare-go/v4/dns"
)

// DNSRecord is the subset of a record this server reports back.
type DNSRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content"`
	Proxied bool   `json:"proxied"`
	Comment string `json:"comment,omitempty"`
	TTL     int    `json:"ttl"`
}

// RecordChange carries the writable record fields for create/edit.
type RecordChange struct {
	Name    string
	Content string
	Type    string
	Comment *string
	Proxied *bool
}

// recordParam builds the record body. TTL is defaulted to automatic on
// create only; an edit is a PATCH and must not touch fields the caller
// did not supply.
func recordParam(change RecordChange, defaultTTL bool) dns.ARecordParam {
	record := dns.ARecordParam{
		Type:    cloudflare.F(dns.ARecordType(change.Type)),
		Content: cloudflare.F(change.Content),
	}
	if defaultTTL {
		record.TTL = cloudflare.F(dns.TTL(1))
	}
	if change.Name != "" {
		record.Name = cloudflare.F(change.Name)
	}
	if change.Comment != nil {
		record.Comment = cloudflare.F(*change.Comment)
	}
	if change.Proxied != nil {
		record.Proxied = cloudflare.F(*change.Proxied)
	}
	return record
}

func recordFromResponse(r dns.RecordResponse) DNSRecord {
	return DNSRecord{
		ID:      r.ID,
		Name:    r.Name,
		Type:    string(r.Type),
		Content: r.Content,
		Proxied: r.Proxied,
		Comment: r.Comment,
		TTL:     int(r.TTL),
	}
}

func (c *Client) CreateDNSRecord(ctx context.Context, zoneID string, change RecordChange) (*DNSRecord, error) {
	resp, err := c.cf.DNS.Records.New(ctx, dns.RecordNewParams{
		ZoneID: cloudflare.F(zoneID),
		Body:   recordParam(change, true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}
	record := recordFromResponse(*resp)
	return &record, nil
}

func (c *Client) EditDNSRecord(ctx context.Context, zoneID, recordID string, change RecordChange) (*DNSRecord, error) {
	resp, err := c.cf.DNS.Records.Edit(ctx, recordID, dns.RecordEditParams{
		ZoneID: cloudflare.F(zoneID),
		Body:   recordParam(change, false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to edit record: %w", err)
	}
	record := recordFromResponse(*resp)
	return &record, nil
}

func (c *Client) DeleteDNSRecord(ctx context.Context, zoneID, recordID string) (*dns.RecordDeleteResponse, error) {
	resp, err := c.cf.DNS.Records.Delete(ctx, recordID, dns.RecordDeleteParams{
		ZoneID: cloudflare.F(zoneID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete record: %w", err)
	}
	return resp, nil
}

// ListDNSRecords returns the first page of records in the zone.
func (c *Client) ListDNSRecords(ctx context.Context, zoneID string) ([]DNSRecord, error) {
	resp, err := c.cf.DNS.Records.List(ctx, dns.RecordListParams{
		ZoneID: cloudflare.F(zoneID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	out := make([]DNSRecord, 0, len(resp.Result))
	for _, r := range resp.Result {
		out = append(out, recordFromResponse(r))
	}
	return out, nil
}
