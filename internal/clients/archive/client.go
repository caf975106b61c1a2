// Package archive stores rendered invoice PDFs in an S3 compatible bucket.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/samandr77/microservices/portal/internal/invoicedoc"
	"github.com/samandr77/microservices/portal/pkg/config"
	"github.com/samandr77/microservices/portal/pkg/transport"
)

const (
	timeout    = 10 * time.Second
	maxRetries = 2
)

type Client struct {
	s3     *s3.S3
	bucket string
}

func NewClient(cfg config.Archive) (*Client, error) {
	awsCfg := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
		MaxRetries:       aws.Int(maxRetries),
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		HTTPClient: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewRequestIDRoundTripper(http.DefaultTransport),
		},
	}

	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}

	return &Client{
		s3:     s3.New(sess),
		bucket: cfg.Bucket,
	}, nil
}

// Key is the object key of an archived invoice.
func Key(customerID string, invoiceID int64) string {
	return fmt.Sprintf("invoices/%s/%s", customerID, invoicedoc.Filename(invoiceID))
}

// PutInvoice uploads pdf and returns its object key.
func (c *Client) PutInvoice(ctx context.Context, customerID string, invoiceID int64, pdf []byte) (string, error) {
	key := Key(customerID, invoiceID)

	_, err := c.s3.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(c.bucket),
		Key:                aws.String(key),
		Body:               bytes.NewReader(pdf),
		ContentLength:      aws.Int64(int64(len(pdf))),
		ContentType:        aws.String("application/pdf"),
		ContentDisposition: aws.String(fmt.Sprintf("attachment; filename=%q", invoicedoc.Filename(invoiceID))),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return key, nil
}
