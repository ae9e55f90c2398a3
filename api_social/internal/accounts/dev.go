package accounts

import (
	"fmt"
	"strings"

	"stratagix/pkg/content"
)

// ParseLinks reads "profile:platform" pairs, for example
// "u1:instagram,u1:linkedin", into accounts for a MemoryStore.
func ParseLinks(links []string) ([]Account, error) {
	out := make([]Account, 0, len(links))
	for _, link := range links {
		profile, platform, ok := strings.Cut(strings.TrimSpace(link), ":")
		if !ok || profile == "" {
			return nil, fmt.Errorf("invalid account link %q", link)
		}
		p := content.Platform(strings.ToLower(platform))
		if p != content.PlatformInstagram && p != content.PlatformLinkedIn {
			return nil, fmt.Errorf("%w: %q", content.ErrInvalidPlatform, platform)
		}
		out = append(out, Account{
			ID:        profile + "-" + string(p),
			ProfileID: profile,
			Platform:  p,
		})
	}
	return out, nil
}
