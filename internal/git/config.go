package git

import (
	"context"
	"strings"
)

// ConfigGet reads a single local git config value.
// Returns ok=false (no error) when the key is not set; git exits 1 for that.
func ConfigGet(ctx context.Context, key string) (string, bool, error) {
	value, err := RunGitCommandWithContext(ctx, "config", "--get", key)
	if err != nil {
		if ExitCode(err) == 1 {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// ConfigSet writes a local git config value
func ConfigSet(ctx context.Context, key, value string) error {
	_, err := RunGitCommandWithContext(ctx, "config", key, value)
	return err
}

// ConfigUnset removes a local git config key. Unsetting a missing key is
// not an error; git exits 5 in that case.
func ConfigUnset(ctx context.Context, key string) error {
	_, err := RunGitCommandWithContext(ctx, "config", "--unset", key)
	if err != nil && ExitCode(err) == 5 {
		return nil
	}
	return err
}

// ConfigGetRegexp returns all "key value" lines whose key matches the pattern.
// No matches (git exit status 1) yields an empty slice, not an error.
func ConfigGetRegexp(ctx context.Context, pattern string) ([]string, error) {
	output, err := RunGitCommandWithContext(ctx, "config", "--get-regexp", pattern)
	if err != nil {
		if ExitCode(err) == 1 {
			return []string{}, nil
		}
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}
