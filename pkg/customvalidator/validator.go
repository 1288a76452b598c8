package customvalidator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"agenda-concretagem/pkg/agenda"
)

// RegisterCustomValidations registra as regras de validação próprias do
// domínio no validador recebido.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("cnpj", isCNPJValido); err != nil {
		return err
	}
	if err := v.RegisterValidation("hora_format", isHoraValida); err != nil {
		return err
	}
	if err := v.RegisterValidation("data_format", isDataValida); err != nil {
		return err
	}
	if err := v.RegisterValidation("status_agenda", isStatusAgenda); err != nil {
		return err
	}
	return nil
}

var reData = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
var reDigitos = regexp.MustCompile(`\D+`)

// Aceita as mesmas formas do parser de horário, inclusive "800" e "1730".
func isHoraValida(fl validator.FieldLevel) bool {
	_, ok := agenda.ParseHora(fl.Field().String())
	return ok
}

func isDataValida(fl validator.FieldLevel) bool {
	return reData.MatchString(fl.Field().String())
}

var statusConhecidos = map[string]bool{
	"agendado":   true,
	"aguardando": true,
	"confirmado": true,
	"execucao":   true,
	"concluido":  true,
	"cancelado":  true,
}

func isStatusAgenda(fl validator.FieldLevel) bool {
	return statusConhecidos[agenda.NormalizarStatus(fl.Field().String())]
}

// isCNPJValido confere 14 dígitos e os dois dígitos verificadores.
func isCNPJValido(fl validator.FieldLevel) bool {
	digits := reDigitos.ReplaceAllString(fl.Field().String(), "")
	if len(digits) != 14 {
		return false
	}
	if strings.Count(digits, string(digits[0])) == 14 {
		return false
	}

	calc := func(base string, pesos []int) int {
		soma := 0
		for i, p := range pesos {
			soma += int(base[i]-'0') * p
		}
		resto := soma % 11
		if resto < 2 {
			return 0
		}
		return 11 - resto
	}

	d1 := calc(digits[:12], []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2})
	d2 := calc(digits[:13], []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2})
	return int(digits[12]-'0') == d1 && int(digits[13]-'0') == d2
}
