package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/statsdigital/dp-region-peaks/apierrors"
	"github.com/statsdigital/dp-region-peaks/config"
	"github.com/statsdigital/dp-region-peaks/mocks"
	"github.com/statsdigital/dp-region-peaks/models"
	"github.com/statsdigital/dp-region-peaks/sdk"
	"github.com/statsdigital/dp-region-peaks/service"
	"github.com/statsdigital/dp-region-peaks/service/mock"
	. "github.com/smartystreets/goconvey/convey"
)

var (
	ctx = context.Background()

	testMetadata = models.DatasetMetadata{
		Title: "Arbetslöshet",
		Variables: []models.DimensionDescriptor{
			{Code: "Region", Text: "region", Values: []string{"00", "0180", "1280", "1480"}, ValueTexts: []string{"Riket", "Stockholm", "Malmö", "Göteborg"}},
			{Code: "ContentsCode", Text: "tabellinnehåll", Values: []string{"ME0104B8"}, ValueTexts: []string{"Procent"}},
			{Code: "Tid", Text: "år", Values: []string{"2014", "2015"}, ValueTexts: []string{"2014", "2015"}, Time: true},
		},
	}

	testTable = models.Table{
		Columns: []models.DimensionDescriptor{{Code: "Region", Text: "region", TypeName: "d"}, {Code: "Tid", Text: "år", TypeName: "t"}},
		Data: []models.Row{
			{Key: []string{"00", "2015"}, Values: []string{"7.4"}},
			{Key: []string{"0180", "2015"}, Values: []string{"8.3"}},
			{Key: []string{"1280", "2015"}, Values: []string{".."}},
			{Key: []string{"00", "2014"}, Values: []string{"7.9"}},
			{Key: []string{"1280", "2014"}, Values: []string{"9.5"}},
			{Key: []string{"1480", "2014"}, Values: []string{"9.5"}},
			{Key: []string{"0180", "2013"}, Values: []string{".."}},
		},
	}
)

func testConfig() *config.Configuration {
	return &config.Configuration{
		LogNamespace:   "dp-region-peaks",
		RequestTimeout: 5 * time.Second,
		OutputFormat:   config.FormatText,
	}
}

func newClientMock(metaErr, dataErr error) *mock.StatisticsClientMock {
	return &mock.StatisticsClientMock{
		GetMetadataFunc: func(ctx context.Context) (models.DatasetMetadata, error) {
			return testMetadata, metaErr
		},
		QueryTableFunc: func(ctx context.Context, query models.Query) (models.Table, error) {
			return testTable, dataErr
		},
	}
}

func newServiceList(client service.StatisticsClient) *service.ExternalServiceList {
	return service.NewServiceList(&mock.InitialiserMock{
		DoGetStatisticsClientFunc: func(cfg *config.Configuration) service.StatisticsClient {
			return client
		},
	})
}

func TestRun(t *testing.T) {
	Convey("Given a statistics client returning metadata and data", t, func() {
		client := newClientMock(nil, nil)
		serviceList := newServiceList(client)
		var buf bytes.Buffer

		Convey("When the service runs with text output", func() {
			err := service.Run(ctx, testConfig(), serviceList, &buf)

			Convey("Then one line per year with data is written in year order", func() {
				So(err, ShouldBeNil)
				So(buf.String(), ShouldEqual, "2014 Malmö, Göteborg, 9.5%\n2015 Stockholm, 8.3%\n")
			})

			Convey("Then the metadata is requested before the national unemployment rate is queried", func() {
				So(serviceList.StatisticsClient, ShouldBeTrue)
				So(client.GetMetadataCalls(), ShouldHaveLength, 1)
				So(client.QueryTableCalls(), ShouldHaveLength, 1)
				So(client.QueryTableCalls()[0].Query, ShouldResemble, models.NewQuery(models.MeasureCountry))
			})
		})

		Convey("When the service runs with json output", func() {
			cfg := testConfig()
			cfg.OutputFormat = config.FormatJSON
			err := service.Run(ctx, cfg, serviceList, &buf)

			Convey("Then the leaders are written as json", func() {
				So(err, ShouldBeNil)
				var got []models.YearLeaders
				So(json.Unmarshal(buf.Bytes(), &got), ShouldBeNil)
				So(got, ShouldResemble, []models.YearLeaders{
					{Year: "2014", Regions: []string{"Malmö", "Göteborg"}, Percentage: 9.5},
					{Year: "2015", Regions: []string{"Stockholm"}, Percentage: 8.3},
				})
			})
		})

		Convey("When the service runs excluding the two tied regions", func() {
			cfg := testConfig()
			cfg.ExcludedRegions = []string{"1280", "1480"}
			err := service.Run(ctx, cfg, serviceList, &buf)

			Convey("Then the next highest region leads", func() {
				So(err, ShouldBeNil)
				So(buf.String(), ShouldEqual, "2014 Riket, 7.9%\n2015 Stockholm, 8.3%\n")
			})
		})
	})

	Convey("Given the metadata cannot be fetched", t, func() {
		client := newClientMock(apierrors.ErrMetadataUnavailable, nil)
		var buf bytes.Buffer
		err := service.Run(ctx, testConfig(), newServiceList(client), &buf)

		Convey("Then the data is never requested and nothing is written", func() {
			So(errors.Is(err, apierrors.ErrMetadataUnavailable), ShouldBeTrue)
			So(client.QueryTableCalls(), ShouldBeEmpty)
			So(buf.String(), ShouldBeEmpty)
		})
	})

	Convey("Given the data cannot be fetched", t, func() {
		client := newClientMock(nil, apierrors.ErrDataUnavailable)
		var buf bytes.Buffer
		err := service.Run(ctx, testConfig(), newServiceList(client), &buf)

		Convey("Then nothing is written", func() {
			So(errors.Is(err, apierrors.ErrDataUnavailable), ShouldBeTrue)
			So(buf.String(), ShouldBeEmpty)
		})
	})

	Convey("Given a row whose region is not in the metadata", t, func() {
		client := newClientMock(nil, nil)
		client.QueryTableFunc = func(ctx context.Context, query models.Query) (models.Table, error) {
			return models.Table{Data: []models.Row{
				{Key: []string{"0180", "2014"}, Values: []string{"8.0"}},
				{Key: []string{"9999", "2015"}, Values: []string{"5.0"}},
			}}, nil
		}
		var buf bytes.Buffer
		err := service.Run(ctx, testConfig(), newServiceList(client), &buf)

		Convey("Then the run fails with a lookup error and no partial output", func() {
			So(errors.Is(err, apierrors.ErrRegionNotFound), ShouldBeTrue)
			So(buf.String(), ShouldBeEmpty)
		})
	})

	Convey("Given metadata without region value texts", t, func() {
		client := newClientMock(nil, nil)
		client.GetMetadataFunc = func(ctx context.Context) (models.DatasetMetadata, error) {
			return models.DatasetMetadata{Variables: []models.DimensionDescriptor{{Code: "Region", Values: []string{"00"}}}}, nil
		}
		err := service.Run(ctx, testConfig(), newServiceList(client), &bytes.Buffer{})

		Convey("Then the run fails before the data is requested", func() {
			So(errors.Is(err, apierrors.ErrRegionDimension), ShouldBeTrue)
			So(client.QueryTableCalls(), ShouldBeEmpty)
		})
	})
}

func TestRunAgainstStatisticsService(t *testing.T) {
	Convey("Given a statistics service serving the table", t, func() {
		fake := mocks.NewStatisticsService()
		defer fake.Close()
		So(fake.SetMetadata(testMetadata), ShouldBeNil)
		So(fake.SetTable(testTable), ShouldBeNil)

		serviceList := newServiceList(sdk.NewWithClienter(fake.URL(), dphttp.NewClient()))
		var buf bytes.Buffer

		Convey("When the service runs", func() {
			err := service.Run(ctx, testConfig(), serviceList, &buf)

			Convey("Then the prefixed response is decoded and the leaders written", func() {
				So(err, ShouldBeNil)
				So(buf.String(), ShouldEqual, "2014 Malmö, Göteborg, 9.5%\n2015 Stockholm, 8.3%\n")
			})

			Convey("Then a GET then a POST were sent to the table path", func() {
				requests := fake.Requests()
				So(requests, ShouldHaveLength, 2)
				So(requests[0].Method, ShouldEqual, "GET")
				So(requests[1].Method, ShouldEqual, "POST")
				So(requests[1].Path, ShouldEqual, sdk.TablePath)
				So(requests[1].Body, ShouldContainSubstring, `"ME0104B8"`)
			})
		})
	})
}
