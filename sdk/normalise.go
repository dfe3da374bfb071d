package sdk

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ONSdigital/log.go/v2/log"
	"github.com/pkg/errors"
	"github.com/statsdigital/dp-region-peaks/apierrors"
)

var (
	typeField     = []byte(`"type"`)
	typeNameField = []byte(`"typeName"`)
	utf8BOM       = []byte{0xEF, 0xBB, 0xBF}
)

// normaliseBody rewrites every quoted "type" field name to "typeName" and then drops the first
// prefixLen bytes. The service prefixes data responses with a byte order mark; the skip is
// positional and nothing else in the client depends on it.
func normaliseBody(ctx context.Context, body []byte, prefixLen int) ([]byte, error) {
	body = bytes.ReplaceAll(body, typeField, typeNameField)

	if len(body) < prefixLen {
		return nil, errors.Wrapf(apierrors.ErrDecode, "body of %d bytes is shorter than the %d byte prefix", len(body), prefixLen)
	}

	if prefix := body[:prefixLen]; prefixLen == len(utf8BOM) && !bytes.Equal(prefix, utf8BOM) {
		log.Warn(ctx, "skipped response prefix is not a byte order mark", log.Data{"prefix": fmt.Sprintf("%q", prefix)})
	}

	return body[prefixLen:], nil
}
