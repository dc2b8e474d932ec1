package definitions

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DescribeVersion renders a dependency version spec as the range it allows.
// "latest" is returned unchanged, "^15.14.0" becomes ">=15.14.0, <16.0.0"
// and an exact "1.2.3" becomes "=1.2.3".
func DescribeVersion(spec string) (string, error) {
	if spec == "latest" {
		return spec, nil
	}
	if _, err := semver.NewConstraint(spec); err != nil {
		return "", fmt.Errorf("parsing version %q: %w", spec, err)
	}

	caret := strings.HasPrefix(spec, "^")
	v, err := semver.StrictNewVersion(strings.TrimPrefix(spec, "^"))
	if err != nil {
		return "", fmt.Errorf("parsing version %q: %w", spec, err)
	}
	if !caret {
		return "=" + v.String(), nil
	}

	// Caret ranges allow changes that do not modify the left-most non-zero
	// component.
	var upper semver.Version
	switch {
	case v.Major() > 0:
		upper = v.IncMajor()
	case v.Minor() > 0:
		upper = v.IncMinor()
	default:
		upper = v.IncPatch()
	}
	return fmt.Sprintf(">=%s, <%s", v, &upper), nil
}
