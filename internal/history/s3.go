package history

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
	"github.com/diegoclair/slack-doughnut-bot/internal/platform/logger"
)

// ObjectStorage is the part of the S3 client the mirror needs.
type ObjectStorage interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Mirror backs a FileStore with a bucket: the channel file is pulled before
// every load and pushed after every save. Push is disabled for dry runs.
type S3Mirror struct {
	local  *FileStore
	client ObjectStorage
	bucket string
	push   bool
	log    *logger.Logger
}

func NewS3Mirror(local *FileStore, client ObjectStorage, bucket string, push bool, log *logger.Logger) *S3Mirror {
	return &S3Mirror{
		local:  local,
		client: client,
		bucket: bucket,
		push:   push,
		log:    log.With("bucket", bucket),
	}
}

func (m *S3Mirror) Load(ctx context.Context, channel entity.Channel) (*entity.PairingHistory, error) {
	if err := m.Pull(ctx, channel); err != nil {
		return nil, err
	}
	return m.local.Load(ctx, channel)
}

func (m *S3Mirror) Save(ctx context.Context, channel entity.Channel, history *entity.PairingHistory) error {
	if err := m.local.Save(ctx, channel, history); err != nil {
		return err
	}
	if !m.push {
		m.log.Info("dry run, history not uploaded", "key", channel.HistoryFileName())
		return nil
	}
	return m.Push(ctx, channel)
}

// Pull replaces the local channel file with the bucket copy, if there is one.
// The local file is only replaced once the whole object has been read.
func (m *S3Mirror) Pull(ctx context.Context, channel entity.Channel) error {
	key := channel.HistoryFileName()

	out, err := m.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(key),
	})
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		m.log.Info("no history in bucket, using local history", "key", key)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to download history %s: %w", key, err)
	}
	defer out.Body.Close()

	if err := os.MkdirAll(m.local.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create history dir: %w", err)
	}

	tmp, err := os.CreateTemp(m.local.dir, key+".*.download")
	if err != nil {
		return fmt.Errorf("failed to create local history file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, out.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write local history file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close local history file: %w", err)
	}

	if err := os.Rename(tmp.Name(), m.local.Path(channel)); err != nil {
		return fmt.Errorf("failed to replace local history file: %w", err)
	}

	m.log.Info("pulled history from bucket", "key", key)
	return nil
}

func (m *S3Mirror) Push(ctx context.Context, channel entity.Channel) error {
	key := channel.HistoryFileName()

	f, err := os.Open(m.local.Path(channel))
	if err != nil {
		return fmt.Errorf("failed to open local history file: %w", err)
	}
	defer f.Close()

	_, err = m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload history %s: %w", key, err)
	}

	m.log.Info("uploaded history to bucket", "key", key)
	return nil
}
