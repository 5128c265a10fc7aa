package main

import (
	"fmt"
	"os"
	"time"

	"upnode"
	"upnode/utils"
	"upnode/vars"
	"upnode/worker"

	_ "github.com/joho/godotenv/autoload"
)

func init() {
	vars.FILESTASH_URL = os.Getenv("FILESTASH_URL")
	vars.FILESTASH_API_KEY = os.Getenv("FILESTASH_API_KEY")
	vars.FILESTASH_SHARE = os.Getenv("FILESTASH_SHARE")
	vars.HISTORY_DB_PATH = os.Getenv("UPNODE_HISTORY_DB")
}

func main() {
	configFile := vars.DEFAULT_CONFIG_FILE
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}

	config, cfgErr := upnode.NewConfigFromFile(configFile)
	if cfgErr != nil {
		fmt.Println("❌ Failure loading config:", cfgErr)
		return
	}

	if procErr := config.Process(); procErr != nil {
		fmt.Println("❌ Failure processing config:", procErr)
		return
	}

	if vars.HISTORY_DB_PATH != "" {
		if err := worker.Init(vars.HISTORY_DB_PATH); err != nil {
			fmt.Println("⚠️ History disabled:", err)
		}
	}

	start := time.Now()
	results, apErr := config.Apply()
	if apErr != nil {
		fmt.Println("❌ Failure applying config:", apErr)
		return
	}

	succeeded := 0
	for _, fr := range results {
		if fr.Result.StatusCode >= 200 && fr.Result.StatusCode < 300 {
			succeeded++
			fmt.Printf("✅ %s (HTTP %d)\n", fr.Path, fr.Result.StatusCode)
		} else {
			fmt.Printf("❌ %s: %s\n", fr.Path, fr.Result.ResultText)
		}
		recordHistory(config.Destination(), fr)
	}

	fmt.Printf("✨ Uploaded %d/%d files %s\n", succeeded, len(results), utils.FormatTime(time.Since(start)))
}

// recordHistory stores the outcome in the history db when enabled. A hash
// failure (file vanished after upload) leaves the hash column empty.
func recordHistory(dest string, fr upnode.FileResult) {
	if !worker.Enabled() {
		return
	}

	hash, _ := utils.FileHash(fr.Path)
	entry := worker.Upload{
		SourcePath:  fr.Path,
		Hash:        hash,
		Destination: dest,
		StatusCode:  fr.Result.StatusCode,
		ResultText:  fr.Result.ResultText,
	}
	if err := worker.Record(entry); err != nil {
		fmt.Println("⚠️ Failed to record history:", err)
	}
}
