package profile

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	maxAvatarBytes = 2 << 20 // 2MB upload ceiling
	avatarSize     = 256
)

var ErrAvatarTooLarge = errors.New("avatar exceeds the 2MB limit")

// processAvatar decodes an uploaded image, squares it down to the avatar
// size and re-encodes it as webp.
func processAvatar(data []byte) ([]byte, error) {
	if len(data) > maxAvatarBytes {
		return nil, ErrAvatarTooLarge
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode avatar image: %w", err)
	}

	thumb := imaging.Fill(img, avatarSize, avatarSize, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, thumb, &webp.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("encode avatar webp: %w", err)
	}
	return buf.Bytes(), nil
}

// avatarObjectName swaps the original extension for .webp, keeping the base
// name for traceability.
func avatarObjectName(filename string) string {
	base := filename
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	if base == "" {
		base = "avatar"
	}
	return base + ".webp"
}
