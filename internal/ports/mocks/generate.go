//go:generate mockgen -source=../holiday_cache.go             -destination=./mock_holiday_cache.go             -package=mocks
//go:generate mockgen -source=../holiday_provider.go          -destination=./mock_holiday_provider.go          -package=mocks
//go:generate mockgen -source=../holiday_fetcher.go           -destination=./mock_holiday_fetcher.go           -package=mocks
//go:generate mockgen -source=../holiday_read_service.go      -destination=./mock_holiday_read_service.go      -package=mocks
//go:generate mockgen -source=../work_holiday_read_service.go -destination=./mock_work_holiday_read_service.go -package=mocks
//go:generate mockgen -source=../validator.go                 -destination=./mock_validator.go                 -package=mocks
//go:generate mockgen -source=../logger.go                    -destination=./mock_logger.go                    -package=mocks
//go:generate mockgen -source=../background_job.go            -destination=./mock_background_job.go            -package=mocks

package mocks
