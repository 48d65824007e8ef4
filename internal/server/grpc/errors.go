package grpc

import (
	"github.com/griotme/griot/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func statusCode(k common.Kind) codes.Code {
	switch k {
	case common.KindUnauthenticated:
		return codes.Unauthenticated
	case common.KindForbidden:
		return codes.PermissionDenied
	case common.KindNotFound:
		return codes.NotFound
	case common.KindBadRequest:
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}

// toStatus maps err onto a status error. Errors that already carry a
// status pass through; internal failures hide their cause.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if st, ok := status.FromError(err); ok {
		return st.Err()
	}

	code := statusCode(common.KindOf(err))
	if code == codes.Internal {
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}
	return status.Error(code, err.Error())
}
