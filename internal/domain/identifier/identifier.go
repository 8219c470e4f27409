// Package identifier classifies raw problem identifiers (URLs or bare slugs) into a platform and
// the canonical id that platform's scraper understands.
package identifier

import (
	"net/url"
	"strings"

	"dsa-tutor/internal/domain/model"
)

const (
	leetcodeHost   = "leetcode.com"
	codeforcesHost = "codeforces.com"
)

// Resolve normalizes raw into a ResolvedIdentifier. It reports false when raw is empty or names a
// host that no supported platform owns. The result depends only on raw.
func Resolve(raw string) (model.ResolvedIdentifier, bool) {
	if raw == "" {
		return model.ResolvedIdentifier{}, false
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		// Unparseable input has no host, so it is treated as a bare slug.
		return model.ResolvedIdentifier{
			Platform:    model.PlatformLeetCode,
			CanonicalID: raw,
		}, true
	}

	host := strings.ToLower(parsed.Host)
	switch {
	case strings.Contains(host, leetcodeHost):
		return model.ResolvedIdentifier{
			Platform:    model.PlatformLeetCode,
			CanonicalID: leetcodeSlug(raw, parsed.Path),
		}, true
	case strings.Contains(host, codeforcesHost):
		return model.ResolvedIdentifier{
			Platform:    model.PlatformCodeforces,
			CanonicalID: codeforcesID(raw, parsed.Path),
		}, true
	case host == "":
		// Bare slugs default to LeetCode.
		return model.ResolvedIdentifier{
			Platform:    model.PlatformLeetCode,
			CanonicalID: raw,
		}, true
	default:
		return model.ResolvedIdentifier{}, false
	}
}

// leetcodeSlug extracts "two-sum" from /problems/two-sum/description/.
func leetcodeSlug(raw, path string) string {
	segments := splitPath(path)
	for i, seg := range segments {
		if seg == "problems" {
			if i+1 < len(segments) && segments[i+1] != "" {
				return segments[i+1]
			}
			break
		}
	}
	return raw
}

// codeforcesID extracts "123/C" from /contest/123/problem/C.
func codeforcesID(raw, path string) string {
	segments := splitPath(path)

	contestIdx := indexOf(segments, "contest", 0)
	if contestIdx < 0 || contestIdx+1 >= len(segments) {
		return raw
	}
	problemIdx := indexOf(segments, "problem", contestIdx+2)
	if problemIdx < 0 || problemIdx+1 >= len(segments) {
		return raw
	}

	contestID, index := segments[contestIdx+1], segments[problemIdx+1]
	if contestID == "" || index == "" {
		return raw
	}
	return contestID + "/" + index
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func indexOf(segments []string, want string, from int) int {
	for i := from; i < len(segments); i++ {
		if segments[i] == want {
			return i
		}
	}
	return -1
}
