package api

import (
	stderrors "errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
	"weatherlookup.app/pkg/validation"
)

type weatherQuery struct {
	City string `form:"city" binding:"required,location"`
}

type weatherPath struct {
	City string `uri:"city" binding:"required,location"`
}

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators installs the "location" binding rule on gin's validator
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = stderrors.New("gin validator engine is not go-playground/validator")
			return
		}
		registerErr = v.RegisterValidation("location", validateLocation)
	})
	return registerErr
}

func validateLocation(fl validator.FieldLevel) bool {
	return validation.IsValidLocation(fl.Field().String())
}

// getWeather handles GET /api/weather?city=
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	var query weatherQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	s.lookup(c, query.City)
}

// getWeatherByPath handles GET /weatherAPI/v1/getWeather/:city
func (s *HTTPServerAdapter) getWeatherByPath(c *gin.Context) {
	var path weatherPath
	if err := c.ShouldBindUri(&path); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	s.lookup(c, path.City)
}

func (s *HTTPServerAdapter) lookup(c *gin.Context, city string) {
	requestLogger(c, s.logger).Debug("Looking up weather", ports.F("city", city))

	snapshot, err := s.weatherUseCase.Lookup(c.Request.Context(), weather.LookupRequest{Location: city})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func bindingError(err error) error {
	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) && len(validationErrs) > 0 {
		if validationErrs[0].Tag() == "required" {
			return errors.NewValidationError("city parameter is required")
		}
		return errors.NewValidationError("city parameter is not a valid location")
	}
	return errors.NewValidationError("invalid request: " + err.Error())
}
