package api

import (
	"ripeness-backend/internal/core"
	"ripeness-backend/internal/database"
	"ripeness-backend/pkg/api"
)

func convertStage(s core.StageDescriptor) api.Stage {
	return api.Stage{
		Stage:           s.Stage,
		Label:           s.Label,
		Description:     s.Description,
		HueLow:          s.HueLow,
		HueHigh:         s.HueHigh,
		DaysToPeak:      core.DaysToPeak(s.Stage),
		Recommendations: s.Recommendations,
	}
}

func convertStages(stages []core.StageDescriptor) []api.Stage {
	out := make([]api.Stage, 0, len(stages))
	for _, s := range stages {
		out = append(out, convertStage(s))
	}
	return out
}

func convertResult(record database.Classification, result core.RipenessResult) api.Classification {
	return api.Classification{
		Id:              record.Id,
		Source:          record.Source,
		InputColor:      record.InputColor.String,
		Stage:           result.Stage,
		Label:           result.Label,
		Description:     result.Description,
		Hue:             result.Hue,
		Confidence:      result.Confidence,
		DaysToPeak:      result.DaysToPeak,
		Recommendations: result.Recommendations,
		HasImage:        record.ImageObjectKey.Valid,
		CreationTime:    record.CreationTime,
	}
}

func convertClassification(record database.Classification) api.Classification {
	out := api.Classification{
		Id:           record.Id,
		Source:       record.Source,
		InputColor:   record.InputColor.String,
		Stage:        record.Stage,
		Hue:          record.Hue,
		Confidence:   record.Confidence,
		DaysToPeak:   record.DaysToPeak,
		HasImage:     record.ImageObjectKey.Valid,
		CreationTime: record.CreationTime,
	}

	if desc, ok := core.StageByNumber(record.Stage); ok {
		out.Label = desc.Label
		out.Description = desc.Description
		out.Recommendations = desc.Recommendations
	}

	return out
}

func convertClassifications(records []database.Classification) []api.Classification {
	out := make([]api.Classification, 0, len(records))
	for _, record := range records {
		out = append(out, convertClassification(record))
	}
	return out
}
