package service

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/d60-Lab/futsalero/pkg/errorx"
	"github.com/d60-Lab/futsalero/pkg/logger"
	"github.com/d60-Lab/futsalero/pkg/telemetry"
)

var (
	ErrInvalidIdentity   = errorx.New(errorx.InvalidIdentity, "identity code must look like AAA1234")
	ErrInvalidCategory   = errorx.New(errorx.InvalidCategory, "unknown competition category")
	ErrInvalidStats      = errorx.New(errorx.InvalidStats, "match stats must be non-negative integers")
	ErrInvalidRole       = errorx.New(errorx.InvalidRole, "role must be player or fan")
	ErrFollowSelf        = errorx.New(errorx.SelfFollow, "cannot follow self")
	ErrCommentEmpty      = errorx.New(errorx.CommentEmpty, "comment must not be empty")
	ErrCommentTooLong    = errorx.New(errorx.CommentTooLong, "comment must not exceed 140 characters")
	ErrPostEmpty         = errorx.New(errorx.PostEmpty, "post body must not be empty")
	ErrIdentityExhausted = errorx.New(errorx.IdentityExhausted, "could not issue a unique identity code")
)

func notFound(what string) error {
	return errorx.Newf(errorx.NotFound, "%s not found", what)
}

// storageErr 记录底层错误并转换为对外的 StorageFailure；已分类的错误原样返回
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var xe *errorx.Error
	if errors.As(err, &xe) {
		return err
	}
	logger.Error("storage failure", zap.String("op", op), zap.Error(err))
	telemetry.CaptureError(err)
	return errorx.Storage(err)
}

// lookupErr 与 storageErr 相同，但把 ErrRecordNotFound 转为 NotFound
func lookupErr(op, what string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(what)
	}
	return storageErr(op, err)
}
