package imagestore

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/yanqian/sunside/internal/domain/imagesearch"
)

// ValkeyStore shares cached lookups between instances through Valkey.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "img"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Get(ctx context.Context, query string) ([]imagesearch.Image, bool, error) {
	cmd := s.client.B().Get().Key(s.entryKey(query)).Build()
	payload, err := s.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	images, err := decodeImages(payload)
	if err != nil {
		return nil, false, err
	}
	return images, true, nil
}

func (s *ValkeyStore) Save(ctx context.Context, query string, images []imagesearch.Image, ttl time.Duration) error {
	payload, err := encodeImages(images)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.entryKey(query)).Value(valkey.BinaryString(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) entryKey(query string) string {
	return fmt.Sprintf("%s:q:%s", s.prefix, query)
}

func encodeImages(images []imagesearch.Image) ([]byte, error) {
	if images == nil {
		images = []imagesearch.Image{}
	}
	payload, err := msgpack.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("encode cached images: %w", err)
	}
	return payload, nil
}

func decodeImages(payload []byte) ([]imagesearch.Image, error) {
	var images []imagesearch.Image
	if err := msgpack.Unmarshal(payload, &images); err != nil {
		return nil, fmt.Errorf("decode cached images: %w", err)
	}
	if images == nil {
		images = []imagesearch.Image{}
	}
	return images, nil
}

var _ imagesearch.Store = (*ValkeyStore)(nil)
