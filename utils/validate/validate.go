package validate

import (
	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/pkg/errors"
)

var ErrInvalid = errors.New("validation failed")

type Validate struct {
	validate *validator.Validate
	trans    ut.Translator
}

// InitValidates 初始化相关可用数据
func (v *Validate) InitValidates(localTrans locales.Translator, local string) error {
	uni := ut.New(localTrans, localTrans)
	v.trans, _ = uni.GetTranslator(local)

	v.validate = validator.New()

	return en_translations.RegisterDefaultTranslations(v.validate, v.trans)
}

// HandleError 处理错误
// r 为验证的赋值模型
// m 为自定义错误消息，键为 Field.tag
func (v *Validate) HandleError(r interface{}, m map[string]string) error {
	err := v.validate.Struct(r)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}
	// 只返回第一个错误
	e := errs[0]
	if msg, ok := m[e.Field()+"."+e.Tag()]; ok {
		return errors.Wrap(ErrInvalid, msg)
	}
	return errors.Wrap(ErrInvalid, e.Translate(v.trans))
}

// New 执行验证
func New(r interface{}, m map[string]string, localTrans locales.Translator, local string) error {
	v := Validate{}
	if err := v.InitValidates(localTrans, local); err != nil {
		return err
	}
	return v.HandleError(r, m)
}

// Run validates with English messages.
func Run(r interface{}, m map[string]string) error {
	return New(r, m, en.New(), "en")
}
