package messenger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumina-labs/lead-funnel/internal/domain"
)

func TestExtractHandle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "plain t.me link", input: "https://t.me/moonbeamfi", want: "moonbeamfi"},
		{name: "t.me without scheme", input: "t.me/moonbeamfi", want: "moonbeamfi"},
		{name: "telegram.me link", input: "https://telegram.me/MoonBeam_Fi", want: "MoonBeam_Fi"},
		{name: "trailing path segment", input: "https://t.me/moonbeamfi/42", want: "moonbeamfi"},
		{name: "at mention", input: "@moonbeamfi", want: "moonbeamfi"},
		{name: "bare handle", input: "moonbeamfi", want: "moonbeamfi"},
		{name: "surrounding whitespace", input: "  https://t.me/moonbeamfi  ", want: "moonbeamfi"},

		{name: "joinchat invite", input: "https://t.me/joinchat/AAAAAEkk2WdoDrB4-Q8-gg", wantErr: domain.ErrPrivateEntity},
		{name: "plus invite", input: "https://t.me/+AbCdEfGh123", wantErr: domain.ErrPrivateEntity},

		{name: "share link", input: "https://t.me/share/url?url=x", wantErr: domain.ErrInvalidHandle},
		{name: "sticker link", input: "https://t.me/addstickers/SomePack", wantErr: domain.ErrInvalidHandle},
		{name: "empty", input: "", wantErr: domain.ErrInvalidHandle},
		{name: "unrelated url", input: "https://example.com/foo", wantErr: domain.ErrInvalidHandle},
		{name: "garbage", input: "not a handle!", wantErr: domain.ErrInvalidHandle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractHandle(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
