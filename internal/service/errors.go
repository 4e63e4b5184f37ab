package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid   = errors.New("参数错误")
	ErrCallerInvalid  = errors.New("用户身份无效")
	ErrPostNotFound   = errors.New("帖子不存在")
	ErrCommentEmpty   = errors.New("评论内容不能为空")
	ErrActionConflict = errors.New("操作冲突，请稍后重试")
	UnauthorizedError = errors.New("权限不足")
	UnExpectedError   = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:   BadRequest,
	ErrCallerInvalid:  Unauthorized,
	ErrPostNotFound:   NotFound,
	ErrCommentEmpty:   BadRequest,
	ErrActionConflict: InternalServerError,
	UnauthorizedError: Unauthorized,
	UnExpectedError:   InternalServerError,
}
