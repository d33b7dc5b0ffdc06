package printers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Fabien-GELUS/substra-mnist/assets"
	"github.com/Fabien-GELUS/substra-mnist/printers"
)

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

var _ = Describe("Printers", func() {
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = &bytes.Buffer{}
	})

	Describe("Get", func() {
		It("should return an asset printer for every printable kind", func() {
			for _, kind := range []assets.Kind{
				assets.Algo, assets.Objective, assets.Dataset,
				assets.DataSample, assets.Traintuple, assets.Testtuple,
			} {
				Expect(printers.Get(kind)).ToNot(Equal(printers.NewJSONOnlyPrinter()), string(kind))
			}
		})

		It("should fall back to the JSON only printer for unknown kinds", func() {
			Expect(printers.Get("unknown")).To(Equal(printers.NewJSONOnlyPrinter()))
			Expect(printers.Get(assets.Model)).To(Equal(printers.NewJSONOnlyPrinter()))
		})
	})

	Describe("table rendering", func() {
		It("should pad every column to a multiple of 4 with at least one blank", func() {
			items := []printers.Item{
				{"key": "a", "name": "x"},
				{"key": "bbbbb"},
			}

			Expect(printers.Get(assets.Algo).PrintList(buf, items, false)).To(Succeed())
			Expect(lines(buf.String())).To(Equal([]string{
				"KEY     NAME    ",
				"a       x       ",
				"bbbbb   None    ",
			}))
		})

		It("should print the header only for an empty list", func() {
			Expect(printers.Get(assets.Algo).PrintList(buf, nil, false)).To(Succeed())
			Expect(buf.String()).To(Equal("KEY NAME    \n"))
		})

		It("should summarize nested values and keep row order", func() {
			items := []printers.Item{
				{
					"key":     "t2",
					"algo":    map[string]interface{}{"name": "Constant death predictor"},
					"status":  "done",
					"dataset": map[string]interface{}{"perf": json.Number("0.76")},
				},
				{
					"key":    "t1",
					"algo":   map[string]interface{}{"name": "Random forest"},
					"status": "todo",
				},
			}

			Expect(printers.Get(assets.Traintuple).PrintList(buf, items, false)).To(Succeed())
			Expect(lines(buf.String())).To(Equal([]string{
				fmt.Sprintf("%-4s%-28s%-8s%-8s", "KEY", "ALGO NAME", "STATUS", "PERF"),
				fmt.Sprintf("%-4s%-28s%-8s%-8s", "t2", "Constant death predictor", "done", "0.76"),
				fmt.Sprintf("%-4s%-28s%-8s%-8s", "t1", "Random forest", "todo", "None"),
			}))
		})

		It("should show data sample key counts in table cells", func() {
			items := []printers.Item{{
				"key":     "t1",
				"dataset": map[string]interface{}{"keys": []interface{}{"a", "b"}},
			}}
			fields := []printers.Field{printers.NewDataSampleKeysField("Keys", "dataset.keys")}
			p := printers.NewAssetPrinter(printers.Descriptor{
				AssetName:  "custom",
				KeyField:   printers.NewField("Key", "key"),
				ListFields: fields,
			})

			Expect(p.PrintList(buf, items, false)).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("2 data sample keys"))
		})
	})

	Describe("raw rendering", func() {
		It("should print a list that parses back to the input", func() {
			items := []printers.Item{
				{"key": "abc", "name": "MyAlgo", "permissions": []interface{}{}},
				{"key": "def", "algo": map[string]interface{}{"name": "A", "rank": 2.5}, "tag": nil},
			}

			Expect(printers.Get(assets.Algo).PrintList(buf, items, true)).To(Succeed())

			var parsed []printers.Item
			Expect(json.Unmarshal(buf.Bytes(), &parsed)).To(Succeed())
			Expect(parsed).To(Equal(items))
		})

		It("should indent with two spaces", func() {
			Expect(printers.Get(assets.Algo).PrintSingle(buf, printers.Item{"key": "abc"}, true, false)).To(Succeed())
			Expect(buf.String()).To(Equal("{\n  \"key\": \"abc\"\n}\n"))
		})

		It("should print an empty list as an empty JSON array", func() {
			Expect(printers.Get(assets.Algo).PrintList(buf, nil, true)).To(Succeed())
			Expect(buf.String()).To(Equal("[]\n"))
		})
	})

	Describe("detail rendering", func() {
		It("should print an algo with its hints", func() {
			item := printers.Item{"key": "abc123", "name": "MyAlgo", "permissions": []interface{}{}}

			Expect(printers.Get(assets.Algo).PrintSingle(buf, item, false, false)).To(Succeed())
			Expect(lines(buf.String())).To(Equal([]string{
				"KEY         abc123",
				"NAME        MyAlgo",
				"PERMISSIONS owner only",
				"",
				"Download this algorithm's code:",
				"\tsubstra download algo abc123",
				"",
				"Display this algo's description:",
				"\tsubstra describe algo abc123",
			}))
		})

		It("should print list values one per line under a blank name column", func() {
			item := printers.Item{
				"key":                 "d1",
				"name":                "Titanic",
				"objectiveKey":        "o1",
				"type":                "csv",
				"trainDataSampleKeys": []interface{}{"s1", "s2"},
				"testDataSampleKeys":  []interface{}{},
				"permissions":         []interface{}{"node-1", "node-2"},
			}
			name := func(s string) string { return fmt.Sprintf("%-24s", s) }
			blank := strings.Repeat(" ", 24)

			Expect(printers.Get(assets.Dataset).PrintSingle(buf, item, false, true)).To(Succeed())
			Expect(lines(buf.String())[:10]).To(Equal([]string{
				name("KEY") + "d1",
				name("NAME") + "Titanic",
				name("OBJECTIVE KEY") + "o1",
				name("TYPE") + "csv",
				name("TRAIN DATA SAMPLE KEYS") + "- s1",
				blank + "- s2",
				name("TEST DATA SAMPLE KEYS") + "None",
				name("PERMISSIONS") + "- node-1",
				blank + "- node-2",
				"",
			}))
		})

		It("should summarize data sample keys unless expanded", func() {
			item := printers.Item{
				"key":                 "d1",
				"trainDataSampleKeys": []interface{}{"s1", "s2"},
				"testDataSampleKeys":  []interface{}{"s3"},
			}

			Expect(printers.Get(assets.Dataset).PrintSingle(buf, item, false, false)).To(Succeed())
			Expect(buf.String()).To(ContainSubstring(fmt.Sprintf("%-24s%s\n", "TRAIN DATA SAMPLE KEYS", "2 data sample keys")))
			Expect(buf.String()).To(ContainSubstring(fmt.Sprintf("%-24s%s\n", "TEST DATA SAMPLE KEYS", "1 data sample key")))
		})

		It("should print missing values as None", func() {
			Expect(printers.Get(assets.Traintuple).PrintSingle(buf, printers.Item{"key": "t1"}, false, false)).To(Succeed())
			Expect(buf.String()).To(ContainSubstring(fmt.Sprintf("%-24s%s\n", "MODEL KEY", "None")))
			Expect(buf.String()).To(ContainSubstring(fmt.Sprintf("%-24s%s\n", "PERMISSIONS", "None")))
		})

		It("should not print download or describe hints for tasks", func() {
			Expect(printers.Get(assets.Testtuple).PrintSingle(buf, printers.Item{"key": "t1"}, false, false)).To(Succeed())
			Expect(buf.String()).ToNot(ContainSubstring("substra download"))
			Expect(buf.String()).ToNot(ContainSubstring("substra describe"))
		})

		It("should print the describe hint only for data samples", func() {
			Expect(printers.Get(assets.DataSample).PrintSingle(buf, printers.Item{"key": "s1"}, false, false)).To(Succeed())
			Expect(lines(buf.String())).To(Equal([]string{
				"KEY s1",
				"",
				"Display this data sample's description:",
				"\tsubstra describe data sample s1",
			}))
		})

		It("should add the leaderboard hint for objectives", func() {
			Expect(printers.Get(assets.Objective).PrintSingle(buf, printers.Item{"key": "o1"}, false, false)).To(Succeed())
			Expect(buf.String()).To(HaveSuffix(strings.Join([]string{
				"",
				"Download this objective's metric:",
				"\tsubstra download objective o1",
				"",
				"Display this objective's description:",
				"\tsubstra describe objective o1",
				"",
				"Display this objective's leaderboard:",
				"\tsubstra leaderboard o1",
				"",
			}, "\n")))
		})
	})

	Describe("JSON only printer", func() {
		items := []printers.Item{{"key": "m1", "traintupleKey": "t1"}}

		DescribeTable("should ignore the raw and expand flags",
			func(raw bool) {
				p := printers.Get("model")
				Expect(p.PrintList(buf, items, raw)).To(Succeed())

				var parsed []printers.Item
				Expect(json.Unmarshal(buf.Bytes(), &parsed)).To(Succeed())
				Expect(parsed).To(Equal(items))
				Expect(buf.String()).To(ContainSubstring("\n  {\n    \"key\": \"m1\""))

				buf.Reset()
				Expect(p.PrintSingle(buf, items[0], raw, !raw)).To(Succeed())
				var single printers.Item
				Expect(json.Unmarshal(buf.Bytes(), &single)).To(Succeed())
				Expect(single).To(Equal(items[0]))
			},
			Entry("raw", true),
			Entry("formatted", false),
		)
	})

	Describe("LeaderboardPrinter", func() {
		leaderboard := printers.Item{
			"objective": map[string]interface{}{
				"key":     "o1",
				"name":    "Titanic survival",
				"metrics": map[string]interface{}{"name": "accuracy"},
				"testDataset": map[string]interface{}{
					"dataManagerKey": "dm1",
					"dataSampleKeys": []interface{}{"s1", "s2"},
				},
				"permissions": []interface{}{},
			},
			"testtuples": []interface{}{
				map[string]interface{}{
					"perf":  0.9,
					"algo":  map[string]interface{}{"name": "Forest"},
					"model": map[string]interface{}{"traintupleKey": "t2"},
				},
				map[string]interface{}{
					"perf":  0.1,
					"algo":  map[string]interface{}{"name": "Constant"},
					"model": map[string]interface{}{"traintupleKey": "t1"},
				},
			},
		}

		It("should print the objective then the testtuples in the given order", func() {
			name := func(s string) string { return fmt.Sprintf("%-24s", s) }

			Expect(printers.NewLeaderboardPrinter().Print(buf, leaderboard, false, false)).To(Succeed())
			Expect(lines(buf.String())).To(Equal([]string{
				"========== OBJECTIVE ==========",
				name("KEY") + "o1",
				name("NAME") + "Titanic survival",
				name("METRICS") + "accuracy",
				name("TEST DATASET KEY") + "dm1",
				name("TEST DATA SAMPLE KEYS") + "2 data sample keys",
				name("PERMISSIONS") + "owner only",
				"",
				"========= LEADERBOARD =========",
				fmt.Sprintf("%-8s%-12s%-16s", "PERF", "ALGO NAME", "TRAINTUPLE KEY"),
				fmt.Sprintf("%-8s%-12s%-16s", "0.9", "Forest", "t2"),
				fmt.Sprintf("%-8s%-12s%-16s", "0.1", "Constant", "t1"),
			}))
		})

		It("should expand the objective data sample keys", func() {
			Expect(printers.NewLeaderboardPrinter().Print(buf, leaderboard, false, true)).To(Succeed())
			Expect(buf.String()).To(ContainSubstring(fmt.Sprintf("%-24s- s1\n%24s- s2\n", "TEST DATA SAMPLE KEYS", "")))
		})

		It("should print the whole structure in raw mode", func() {
			Expect(printers.NewLeaderboardPrinter().Print(buf, leaderboard, true, false)).To(Succeed())

			var parsed printers.Item
			Expect(json.Unmarshal(buf.Bytes(), &parsed)).To(Succeed())
			Expect(parsed).To(Equal(leaderboard))
		})

		It("should tolerate a missing objective and testtuples", func() {
			Expect(printers.NewLeaderboardPrinter().Print(buf, printers.Item{}, false, false)).To(Succeed())
			Expect(buf.String()).To(ContainSubstring(fmt.Sprintf("%-24s%s\n", "KEY", "None")))
			Expect(buf.String()).To(HaveSuffix("========= LEADERBOARD =========\n" +
				fmt.Sprintf("%-8s%-12s%-16s\n", "PERF", "ALGO NAME", "TRAINTUPLE KEY")))
		})
	})
})
