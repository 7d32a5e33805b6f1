package utils

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/exceptions"
	"errors"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

func parseOptionalFloat(query url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, exceptions.ErrQueryParamValidation(err, key)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, exceptions.ErrQueryParamValidation(errors.New("value is not a finite number"), key)
	}
	return &value, nil
}

// BuildDoctorFilterFromQuery reads the doctor search filters shared by /doctors and /availability.
func BuildDoctorFilterFromQuery(r *http.Request) (models.DoctorFilter, error) {
	query := r.URL.Query()
	filter := models.DoctorFilter{
		Specialization: strings.TrimSpace(query.Get(constvars.QueryParamSpecialization)),
		Gender:         strings.ToLower(strings.TrimSpace(query.Get(constvars.QueryParamGender))),
	}

	if languages := query.Get(constvars.QueryParamLanguages); languages != "" {
		filter.Languages = cleanWhiteSpaceFromEachStringOfAnArray(strings.Split(languages, ","))
	}

	var err error
	if filter.MinPrice, err = parseOptionalFloat(query, constvars.QueryParamMinPrice); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = parseOptionalFloat(query, constvars.QueryParamMaxPrice); err != nil {
		return filter, err
	}
	if filter.MinRating, err = parseOptionalFloat(query, constvars.QueryParamMinRating); err != nil {
		return filter, err
	}

	if verifiedOnly := strings.TrimSpace(query.Get(constvars.QueryParamVerifiedOnly)); verifiedOnly != "" {
		filter.VerifiedOnly, err = strconv.ParseBool(verifiedOnly)
		if err != nil {
			return filter, exceptions.ErrQueryParamValidation(err, constvars.QueryParamVerifiedOnly)
		}
	}

	return filter, nil
}

func BuildFindAvailabilityRequest(r *http.Request) (*requests.FindAvailability, error) {
	filter, err := BuildDoctorFilterFromQuery(r)
	if err != nil {
		return nil, err
	}

	query := r.URL.Query()
	return &requests.FindAvailability{
		DoctorID:  strings.TrimSpace(query.Get(constvars.QueryParamDoctorID)),
		StartDate: strings.TrimSpace(query.Get(constvars.QueryParamStartDate)),
		EndDate:   strings.TrimSpace(query.Get(constvars.QueryParamEndDate)),
		Filter:    filter,
	}, nil
}
