package steps

import (
	"fmt"
	"strings"

	"github.com/cucumber/godog"
	"github.com/statsdigital/dp-region-peaks/apierrors"
	"github.com/statsdigital/dp-region-peaks/models"
	"github.com/stretchr/testify/assert"
)

func (c *RegionPeaksComponent) RegisterSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the statistics service has these regions:$`, c.theStatisticsServiceHasTheseRegions)
	ctx.Step(`^the statistics service has these unemployment rates:$`, c.theStatisticsServiceHasTheseUnemploymentRates)
	ctx.Step(`^the statistics service returns status (\d+) for metadata$`, c.theStatisticsServiceReturnsStatusForMetadata)
	ctx.Step(`^the statistics service returns status (\d+) for data$`, c.theStatisticsServiceReturnsStatusForData)
	ctx.Step(`^the statistics service returns this data body:$`, c.theStatisticsServiceReturnsThisDataBody)
	ctx.Step(`^the statistics service prefixes data with "([^"]*)"$`, c.theStatisticsServicePrefixesDataWith)
	ctx.Step(`^regions "([^"]*)" are excluded$`, c.regionsAreExcluded)
	ctx.Step(`^the output format is "([^"]*)"$`, c.theOutputFormatIs)
	ctx.Step(`^I run the region peaks report$`, c.iRunTheRegionPeaksReport)
	ctx.Step(`^the report should be:$`, c.theReportShouldBe)
	ctx.Step(`^the report should be empty$`, c.theReportShouldBeEmpty)
	ctx.Step(`^the run should succeed$`, c.theRunShouldSucceed)
	ctx.Step(`^the run should fail with exit code (\d+) and message "([^"]*)"$`, c.theRunShouldFailWithExitCodeAndMessage)
	ctx.Step(`^the statistics service should have received (\d+) requests?$`, c.theStatisticsServiceShouldHaveReceivedRequests)
}

func (c *RegionPeaksComponent) theStatisticsServiceHasTheseRegions(table *godog.Table) error {
	c.regionCodes, c.regionNames = nil, nil
	for _, row := range table.Rows[1:] {
		c.regionCodes = append(c.regionCodes, row.Cells[0].Value)
		c.regionNames = append(c.regionNames, row.Cells[1].Value)
	}

	return c.StatisticsService.SetMetadata(models.DatasetMetadata{
		Title: "Arbetslöshet efter region och år",
		Variables: []models.DimensionDescriptor{
			{Code: models.RegionDimensionCode, Text: "region", Values: c.regionCodes, ValueTexts: c.regionNames},
			{Code: models.ContentsDimensionCode, Text: "tabellinnehåll", Values: []string{models.MeasureCountry}, ValueTexts: []string{"Arbetslöshet, procent"}},
			{Code: models.TimeDimensionCode, Text: "år", Time: true},
		},
	})
}

func (c *RegionPeaksComponent) theStatisticsServiceHasTheseUnemploymentRates(table *godog.Table) error {
	if len(table.Rows) == 0 || len(table.Rows[0].Cells) != 3 {
		return fmt.Errorf("expected a table with region, year and value columns")
	}

	rows := make([]models.Row, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		rows = append(rows, models.Row{
			Key:    []string{row.Cells[0].Value, row.Cells[1].Value},
			Values: []string{row.Cells[2].Value},
		})
	}

	return c.StatisticsService.SetTable(models.Table{
		Columns: []models.DimensionDescriptor{
			{Code: models.RegionDimensionCode, Text: "region", TypeName: "d"},
			{Code: models.TimeDimensionCode, Text: "år", TypeName: "t"},
			{Code: models.MeasureCountry, Text: "Arbetslöshet, procent", TypeName: "c"},
		},
		Comments: []models.Annotation{},
		Data:     rows,
	})
}

func (c *RegionPeaksComponent) theStatisticsServiceReturnsStatusForMetadata(status int) error {
	c.StatisticsService.SetMetadataStatus(status)
	return nil
}

func (c *RegionPeaksComponent) theStatisticsServiceReturnsStatusForData(status int) error {
	c.StatisticsService.SetDataStatus(status)
	return nil
}

func (c *RegionPeaksComponent) theStatisticsServiceReturnsThisDataBody(body *godog.DocString) error {
	c.StatisticsService.SetRawData([]byte(body.Content))
	return nil
}

func (c *RegionPeaksComponent) theStatisticsServicePrefixesDataWith(prefix string) error {
	c.StatisticsService.SetPrefix([]byte(prefix))
	return nil
}

func (c *RegionPeaksComponent) regionsAreExcluded(codes string) error {
	c.Config.ExcludedRegions = strings.Split(codes, ",")
	return nil
}

func (c *RegionPeaksComponent) theOutputFormatIs(format string) error {
	c.Config.OutputFormat = format
	return c.Config.Validate()
}

func (c *RegionPeaksComponent) iRunTheRegionPeaksReport() error {
	c.run()
	return nil
}

func (c *RegionPeaksComponent) theReportShouldBe(expected *godog.DocString) error {
	assert.Equal(&c.ErrorFeature, strings.TrimSpace(expected.Content), strings.TrimSpace(c.Output.String()))
	return c.ErrorFeature.StepError()
}

func (c *RegionPeaksComponent) theReportShouldBeEmpty() error {
	assert.Empty(&c.ErrorFeature, c.Output.String())
	return c.ErrorFeature.StepError()
}

func (c *RegionPeaksComponent) theRunShouldSucceed() error {
	assert.NoError(&c.ErrorFeature, c.RunError)
	return c.ErrorFeature.StepError()
}

func (c *RegionPeaksComponent) theRunShouldFailWithExitCodeAndMessage(code int, message string) error {
	if c.RunError == nil {
		return fmt.Errorf("expected the run to fail")
	}
	assert.Equal(&c.ErrorFeature, code, apierrors.ExitCode(c.RunError))
	assert.Contains(&c.ErrorFeature, apierrors.Message(c.RunError), message)
	return c.ErrorFeature.StepError()
}

func (c *RegionPeaksComponent) theStatisticsServiceShouldHaveReceivedRequests(count int) error {
	assert.Len(&c.ErrorFeature, c.StatisticsService.Requests(), count)
	return c.ErrorFeature.StepError()
}
