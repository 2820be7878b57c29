package wallet

import (
	"os"
	"strings"

	"github.com/oruchain/sendtx/errors"
)

// CredentialSource locates the secret recovery phrase. Exactly one of
// the two locations is set.
type CredentialSource struct {
	FilePath string
	EnvVar   string
}

// NewSource builds a CredentialSource, enforcing the one-source rule.
func NewSource(filePath, envVar string) (CredentialSource, error) {
	if filePath != "" && envVar != "" {
		return CredentialSource{}, errors.NewError(errors.KindUsage,
			"wallet file and wallet env are mutually exclusive, configure exactly one")
	}
	if filePath == "" && envVar == "" {
		return CredentialSource{}, errors.NewError(errors.KindUsage,
			"no wallet credential source configured")
	}
	return CredentialSource{FilePath: filePath, EnvVar: envVar}, nil
}

// Resolve reads the recovery phrase from the configured source. The
// phrase is trimmed but otherwise untouched, and is never logged.
func (s CredentialSource) Resolve() (string, error) {
	switch {
	case s.FilePath != "":
		data, err := os.ReadFile(s.FilePath)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.Wrap(errors.KindCredential,
					"wallet file "+s.FilePath+" not found. "+errors.ErrMsgWalletSetup, err)
			}
			return "", errors.Wrap(errors.KindCredential,
				"wallet file "+s.FilePath+" is unreadable", err)
		}
		phrase := strings.TrimSpace(string(data))
		if phrase == "" {
			return "", errors.NewError(errors.KindCredential, errors.ErrMsgEmptyCredential)
		}
		return phrase, nil
	case s.EnvVar != "":
		phrase := strings.TrimSpace(os.Getenv(s.EnvVar))
		if phrase == "" {
			return "", errors.Errorf(errors.KindCredential,
				"environment variable %s is not set. %s", s.EnvVar, errors.ErrMsgWalletSetup)
		}
		return phrase, nil
	}
	return "", errors.NewError(errors.KindCredential, "no wallet credential source configured")
}

// Describe names the source for logs without exposing the secret.
func (s CredentialSource) Describe() string {
	if s.FilePath != "" {
		return "file:" + s.FilePath
	}
	return "env:" + s.EnvVar
}
