package printers

import (
	"fmt"

	"github.com/Fabien-GELUS/substra-mnist/assets"
)

var keyField = NewField("Key", "key")

var objectiveSingleFields = []Field{
	NewField("Name", "name"),
	NewField("Metrics", "metrics.name"),
	NewField("Test dataset key", "testDataset.dataManagerKey"),
	NewDataSampleKeysField("Test data sample keys", "testDataset.dataSampleKeys"),
	NewPermissionField("Permissions", "permissions"),
}

// AlgoDescriptor describes algorithms.
var AlgoDescriptor = Descriptor{
	AssetName: "algo",
	KeyField:  keyField,
	ListFields: []Field{
		NewField("Name", "name"),
	},
	SingleFields: []Field{
		NewField("Name", "name"),
		NewPermissionField("Permissions", "permissions"),
	},
	DownloadMessage: "Download this algorithm's code:",
	HasDescription:  true,
}

// ObjectiveDescriptor describes objectives.
var ObjectiveDescriptor = Descriptor{
	AssetName: "objective",
	KeyField:  keyField,
	ListFields: []Field{
		NewField("Name", "name"),
		NewField("Metrics", "metrics.name"),
	},
	SingleFields:    objectiveSingleFields,
	DownloadMessage: "Download this objective's metric:",
	HasDescription:  true,
	ExtraHints:      []HintFunc{leaderboardHint},
}

// DatasetDescriptor describes datasets.
var DatasetDescriptor = Descriptor{
	AssetName: "dataset",
	KeyField:  keyField,
	ListFields: []Field{
		NewField("Name", "name"),
		NewField("Type", "type"),
	},
	SingleFields: []Field{
		NewField("Name", "name"),
		NewField("Objective key", "objectiveKey"),
		NewField("Type", "type"),
		NewDataSampleKeysField("Train data sample keys", "trainDataSampleKeys"),
		NewDataSampleKeysField("Test data sample keys", "testDataSampleKeys"),
		NewPermissionField("Permissions", "permissions"),
	},
	DownloadMessage: "Download this data manager's opener:",
	HasDescription:  true,
}

// DataSampleDescriptor describes data samples, which only have a key.
var DataSampleDescriptor = Descriptor{
	AssetName:      "data sample",
	KeyField:       keyField,
	HasDescription: true,
}

// TraintupleDescriptor describes training tasks.
var TraintupleDescriptor = Descriptor{
	AssetName: "traintuple",
	KeyField:  keyField,
	ListFields: []Field{
		NewField("Algo name", "algo.name"),
		NewField("Status", "status"),
		NewField("Perf", "dataset.perf"),
	},
	SingleFields: []Field{
		NewField("Model key", "outModel.hash"),
		NewField("Algo key", "algo.hash"),
		NewField("Algo name", "algo.name"),
		NewField("Objective key", "objective.hash"),
		NewField("Status", "status"),
		NewField("Perf", "dataset.perf"),
		NewDataSampleKeysField("Train data sample keys", "dataset.keys"),
		NewField("Rank", "rank"),
		NewField("Compute Plan Id", "computePlanID"),
		NewField("Tag", "tag"),
		NewField("Log", "log"),
		NewPermissionField("Permissions", "permissions"),
	},
}

// TesttupleDescriptor describes testing tasks.
var TesttupleDescriptor = Descriptor{
	AssetName: "testtuple",
	KeyField:  keyField,
	ListFields: []Field{
		NewField("Algo name", "algo.name"),
		NewField("Certified", "certified"),
		NewField("Status", "status"),
		NewField("Perf", "dataset.perf"),
	},
	SingleFields: []Field{
		NewField("Traintuple key", "model.traintupleKey"),
		NewField("Algo key", "algo.hash"),
		NewField("Algo name", "algo.name"),
		NewField("Objective key", "objective.hash"),
		NewField("Certified", "certified"),
		NewField("Status", "status"),
		NewField("Perf", "dataset.perf"),
		NewDataSampleKeysField("Test data sample keys", "dataset.keys"),
		NewField("Tag", "tag"),
		NewField("Log", "log"),
		NewPermissionField("Permissions", "permissions"),
	},
}

func leaderboardHint(key string) Hint {
	return Hint{
		Message: "Display this objective's leaderboard:",
		Command: fmt.Sprintf("substra leaderboard %s", key),
	}
}

// Get returns the printer of the given asset kind. Kinds without declared
// fields get a printer that always prints raw JSON.
func Get(kind assets.Kind) Printer {
	switch kind {
	case assets.Algo:
		return NewAssetPrinter(AlgoDescriptor)
	case assets.Objective:
		return NewAssetPrinter(ObjectiveDescriptor)
	case assets.Dataset:
		return NewAssetPrinter(DatasetDescriptor)
	case assets.DataSample:
		return NewAssetPrinter(DataSampleDescriptor)
	case assets.Traintuple:
		return NewAssetPrinter(TraintupleDescriptor)
	case assets.Testtuple:
		return NewAssetPrinter(TesttupleDescriptor)
	default:
		return NewJSONOnlyPrinter()
	}
}
