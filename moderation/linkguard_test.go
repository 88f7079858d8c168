package moderation_test

import (
	"ares-gme/moderation"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Flags_detects_link_shapes_case_insensitively(t *testing.T) {
	req := require.New(t)
	guard, err := moderation.NewLinkGuard(moderation.DefaultPatterns)
	req.NoError(err)

	flagged := []string{
		"see http://example.com",
		"see https://example.com/path",
		"HTTPS://EXAMPLE.COM",
		"join at www.example.org now",
		"WwW.example.org",
		"prefix-www.host",
	}
	for _, text := range flagged {
		req.True(guard.Flags(text), text)
	}

	clean := []string{
		"plain chatter",
		"!kick @user",
		"the word wow and htm fragment",
		"",
	}
	for _, text := range clean {
		req.False(guard.Flags(text), text)
	}
}

func Test_Flags_reports_once_for_multiple_links(t *testing.T) {
	guard, err := moderation.NewLinkGuard(moderation.DefaultPatterns)
	require.NoError(t, err)

	require.True(t, guard.Flags("http://a.example and www.b.example"))
}

func Test_NewLinkGuard_accepts_custom_patterns(t *testing.T) {
	req := require.New(t)
	guard, err := moderation.NewLinkGuard([]string{"ftp"})
	req.NoError(err)

	req.True(guard.Flags("grab it from FTP://files.example"))
	req.False(guard.Flags("see http://example.com"))
}
