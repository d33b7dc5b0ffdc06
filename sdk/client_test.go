package sdk_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/Fabien-GELUS/substra-mnist/assets"
	"github.com/Fabien-GELUS/substra-mnist/config"
	"github.com/Fabien-GELUS/substra-mnist/sdk"
)

var _ = Describe("Client", func() {
	var (
		ctx     context.Context
		router  *mux.Router
		server  *httptest.Server
		client  *sdk.Client
		profile config.Profile
	)

	fastBackoff := wait.Backoff{Duration: time.Millisecond, Factor: 1, Steps: 5}

	writeJSON := func(w http.ResponseWriter, status int, body string) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}

	BeforeEach(func() {
		ctx = context.Background()
		router = mux.NewRouter()
		server = httptest.NewServer(router)
		DeferCleanup(server.Close)

		profile = config.Profile{
			URL:     server.URL,
			Version: "0.0",
			Auth:    config.Auth{User: "alice", Password: "secret"},
		}
	})

	JustBeforeEach(func() {
		var err error
		client, err = sdk.NewClient(profile, sdk.WithBackoff(fastBackoff))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("NewClient", func() {
		It("should reject an invalid profile", func() {
			_, err := sdk.NewClient(config.Profile{URL: "ftp://node"})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("invalid profile"))
		})
	})

	Describe("requests", func() {
		It("should send version, credentials and a request id", func() {
			var (
				header http.Header
				key    string
			)
			router.HandleFunc("/algo/{key}/", func(w http.ResponseWriter, r *http.Request) {
				header = r.Header.Clone()
				key = mux.Vars(r)["key"]
				writeJSON(w, http.StatusOK, `{"key": "abc"}`)
			})

			_, err := client.Get(ctx, assets.Algo, "abc")
			Expect(err).NotTo(HaveOccurred())

			Expect(header.Get("Accept")).To(Equal("application/json;version=0.0"))
			Expect(header.Get("Authorization")).To(HavePrefix("Basic "))
			_, err = uuid.Parse(header.Get("X-Request-ID"))
			Expect(err).NotTo(HaveOccurred())
			Expect(key).To(Equal("abc"))
		})
	})

	Describe("List", func() {
		It("should route datasets to the data manager endpoint and flatten nested lists", func() {
			router.HandleFunc("/data_manager/", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, `[[{"key": "a"}, {"key": "b"}], [{"key": "c"}]]`)
			})

			items, err := client.List(ctx, assets.Dataset)
			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(HaveLen(3))
			Expect(items[2]["key"]).To(Equal("c"))
		})

		It("should forward filters as search terms", func() {
			var query string
			router.HandleFunc("/traintuple/", func(w http.ResponseWriter, r *http.Request) {
				query = r.URL.Query().Get("search")
				writeJSON(w, http.StatusOK, `[]`)
			})

			items, err := client.List(ctx, assets.Traintuple, "traintuple:status:done", "traintuple:rank:0")
			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(BeEmpty())
			Expect(query).To(Equal("traintuple:status:done,traintuple:rank:0"))
		})

		It("should keep numbers exact", func() {
			router.HandleFunc("/testtuple/", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, `[{"key": "t", "dataset": {"perf": 1.0}}]`)
			})

			items, err := client.List(ctx, assets.Testtuple)
			Expect(err).NotTo(HaveOccurred())
			Expect(items[0]["dataset"]).To(HaveKeyWithValue("perf", json.Number("1.0")))
		})
	})

	Describe("Get", func() {
		It("should return a RequestError for a missing asset", func() {
			router.HandleFunc("/objective/missing/", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusNotFound, `{"message": "not found"}`)
			})

			_, err := client.Get(ctx, assets.Objective, "missing")
			Expect(err).To(HaveOccurred())
			Expect(sdk.IsNotFound(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("404"))
		})

		It("should retry server errors", func() {
			var calls int32
			router.HandleFunc("/algo/flaky/", func(w http.ResponseWriter, r *http.Request) {
				if atomic.AddInt32(&calls, 1) < 3 {
					writeJSON(w, http.StatusServiceUnavailable, `{}`)
					return
				}
				writeJSON(w, http.StatusOK, `{"key": "flaky"}`)
			})

			asset, err := client.Get(ctx, assets.Algo, "flaky")
			Expect(err).NotTo(HaveOccurred())
			Expect(asset["key"]).To(Equal("flaky"))
			Expect(atomic.LoadInt32(&calls)).To(Equal(int32(3)))
		})

		It("should give up after the last attempt with the server error", func() {
			var calls int32
			router.HandleFunc("/algo/down/", func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				writeJSON(w, http.StatusInternalServerError, `{}`)
			})

			_, err := client.Get(ctx, assets.Algo, "down")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("500"))
			Expect(atomic.LoadInt32(&calls)).To(BeNumerically(">", 1))
			Expect(atomic.LoadInt32(&calls)).To(BeNumerically("<=", fastBackoff.Steps))
		})

		It("should not retry client errors", func() {
			var calls int32
			router.HandleFunc("/algo/forbidden/", func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				writeJSON(w, http.StatusForbidden, `{}`)
			})

			_, err := client.Get(ctx, assets.Algo, "forbidden")
			Expect(err).To(HaveOccurred())
			Expect(atomic.LoadInt32(&calls)).To(Equal(int32(1)))
		})
	})

	Describe("Describe", func() {
		It("should fetch the description address", func() {
			router.HandleFunc("/algo/abc/", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, `{"key": "abc", "description": {"storageAddress": "`+server.URL+`/files/abc/description/"}}`)
			})
			router.HandleFunc("/files/abc/description/", func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, "# My algo\n")
			})

			description, err := client.Describe(ctx, assets.Algo, "abc")
			Expect(err).NotTo(HaveOccurred())
			Expect(description).To(Equal("# My algo\n"))
		})

		It("should fail when the asset has no description", func() {
			router.HandleFunc("/traintuple/t/", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, `{"key": "t"}`)
			})

			_, err := client.Describe(ctx, assets.Traintuple, "t")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("has no description"))
		})
	})

	Describe("Download", func() {
		It("should write the opener of a dataset", func() {
			dir := GinkgoT().TempDir()
			router.HandleFunc("/data_manager/d/", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, `{"key": "d", "opener": {"storageAddress": "`+server.URL+`/files/d/opener/"}}`)
			})
			router.HandleFunc("/files/d/opener/", func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, "import substratools\n")
			})

			path, err := client.Download(ctx, assets.Dataset, "d", dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(Equal(filepath.Join(dir, "opener.py")))

			content, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal("import substratools\n"))
		})

		It("should use the file name announced by the server", func() {
			dir := GinkgoT().TempDir()
			router.HandleFunc("/algo/a/", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, `{"key": "a", "content": {"storageAddress": "`+server.URL+`/files/a/"}}`)
			})
			router.HandleFunc("/files/a/", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Disposition", `attachment; filename="constant.tar.gz"`)
				_, _ = w.Write([]byte{0x1f, 0x8b})
			})

			path, err := client.Download(ctx, assets.Algo, "a", dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(filepath.Base(path)).To(Equal("constant.tar.gz"))
		})

		It("should reject kinds without a file", func() {
			_, err := client.Download(ctx, assets.Traintuple, "t", GinkgoT().TempDir())
			Expect(err).To(MatchError(sdk.ErrInvalidAsset))
		})
	})

	Describe("Leaderboard", func() {
		It("should request the sorted leaderboard of an objective", func() {
			var sort string
			router.HandleFunc("/objective/o/leaderboard/", func(w http.ResponseWriter, r *http.Request) {
				sort = r.URL.Query().Get("sort")
				writeJSON(w, http.StatusOK, `{"objective": {"key": "o"}, "testtuples": []}`)
			})

			leaderboard, err := client.Leaderboard(ctx, "o", sdk.SortAsc)
			Expect(err).NotTo(HaveOccurred())
			Expect(leaderboard).To(HaveKey("objective"))
			Expect(sort).To(Equal("asc"))
		})

		It("should default to descending order", func() {
			var sort string
			router.HandleFunc("/objective/o/leaderboard/", func(w http.ResponseWriter, r *http.Request) {
				sort = r.URL.Query().Get("sort")
				writeJSON(w, http.StatusOK, `{}`)
			})

			_, err := client.Leaderboard(ctx, "o", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(sort).To(Equal("desc"))
		})

		It("should reject an unknown order", func() {
			_, err := client.Leaderboard(ctx, "o", "random")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("AddTraintuple", func() {
		spec := sdk.Asset{"algo_key": "a", "data_manager_key": "d", "train_data_sample_keys": []interface{}{"s1"}}

		It("should post the task definition and return the created task", func() {
			var received map[string]interface{}
			router.HandleFunc("/traintuple/", func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Method).To(Equal(http.MethodPost))
				Expect(r.Header.Get("Content-Type")).To(Equal("application/json"))
				Expect(json.NewDecoder(r.Body).Decode(&received)).To(Succeed())
				writeJSON(w, http.StatusCreated, `{"pkhash": "tt1"}`)
			}).Methods(http.MethodPost)

			created, err := client.AddTraintuple(ctx, spec, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(HaveKeyWithValue("pkhash", "tt1"))
			Expect(received).To(HaveKeyWithValue("algo_key", "a"))
		})

		It("should fail on conflict without exist-ok", func() {
			router.HandleFunc("/traintuple/", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusConflict, `{"pkhash": "tt1"}`)
			}).Methods(http.MethodPost)

			_, err := client.AddTraintuple(ctx, spec, false)
			Expect(sdk.IsConflict(err)).To(BeTrue())
		})

		It("should fetch the existing task on conflict with exist-ok", func() {
			router.HandleFunc("/traintuple/", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusConflict, `{"pkhash": "tt1"}`)
			}).Methods(http.MethodPost)
			router.HandleFunc("/traintuple/tt1/", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, `{"key": "tt1", "status": "done"}`)
			}).Methods(http.MethodGet)

			existing, err := client.AddTraintuple(ctx, spec, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(existing).To(HaveKeyWithValue("status", "done"))
		})
	})

	Describe("AddTesttuple", func() {
		It("should post to the testtuple endpoint", func() {
			router.HandleFunc("/testtuple/", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusCreated, `{"key": "te1"}`)
			}).Methods(http.MethodPost)

			created, err := client.AddTesttuple(ctx, sdk.Asset{"traintuple_key": "tt1"}, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(HaveKeyWithValue("key", "te1"))
		})
	})
})
