package validator

import (
	"reflect"
	"strings"

	"github.com/aithreya/learning-service/internal/models"
	"github.com/go-playground/validator/v10"
)

// Validator wraps the struct validator with domain-specific tags registered.
type Validator struct {
	structValidator *validator.Validate
}

// New creates a new validator instance with all custom tags registered.
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)

	return &Validator{structValidator: structValidator}
}

// ValidateStruct validates struct tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("content_type", validateContentType)
	validate.RegisterValidation("difficulty_level", validateDifficultyLevel)
	validate.RegisterValidation("language_code", validateLanguageCode)
	validate.RegisterValidation("education_level", validateEducationLevel)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validation functions
func validateContentType(fl validator.FieldLevel) bool {
	validTypes := []models.ContentType{
		models.ContentArticle,
		models.ContentFundamentalRight,
		models.ContentDirectivePrinciple,
		models.ContentFundamentalDuty,
		models.ContentPreamble,
		models.ContentAmendment,
		models.ContentSchedule,
	}

	value := fl.Field().String()
	for _, validType := range validTypes {
		if string(validType) == value {
			return true
		}
	}
	return false
}

func validateDifficultyLevel(fl validator.FieldLevel) bool {
	validLevels := []models.DifficultyLevel{
		models.DifficultyBeginner,
		models.DifficultyIntermediate,
		models.DifficultyAdvanced,
	}

	value := fl.Field().String()
	for _, validLevel := range validLevels {
		if string(validLevel) == value {
			return true
		}
	}
	return false
}

func validateLanguageCode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, code := range models.SupportedLanguages {
		if code == value {
			return true
		}
	}
	return false
}

func validateEducationLevel(fl validator.FieldLevel) bool {
	validLevels := []models.EducationLevel{
		models.EducationSchool,
		models.EducationUndergraduate,
		models.EducationPostgraduate,
		models.EducationProfessional,
		models.EducationGeneral,
	}

	value := fl.Field().String()
	for _, validLevel := range validLevels {
		if string(validLevel) == value {
			return true
		}
	}
	return false
}
