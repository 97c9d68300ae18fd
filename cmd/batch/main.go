package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ripeness-backend/internal/core"
	"ripeness-backend/internal/core/utils"

	"github.com/schollz/progressbar/v3"
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
}

type fileResult struct {
	path   string
	result core.RipenessResult
}

func main() {
	var dir string
	var workers int

	flag.StringVar(&dir, "dir", "", "directory of banana images to classify")
	flag.IntVar(&workers, "workers", 4, "number of concurrent workers")
	flag.Parse()

	if dir == "" {
		log.Fatal("usage: batch -dir <image directory> [-workers n]")
	}

	paths, err := collectImagePaths(dir)
	if err != nil {
		log.Fatalf("error scanning %s: %v", dir, err)
	}
	if len(paths) == 0 {
		log.Fatalf("no images found in %s", dir)
	}

	queue := make(chan string, len(paths))
	for _, p := range paths {
		queue <- p
	}
	close(queue)

	completed := make(chan utils.CompletedTask[fileResult], len(paths))
	utils.RunInPool(context.Background(), classifyFile, queue, completed, workers)

	bar := progressbar.NewOptions(len(paths),
		progressbar.OptionSetDescription("⏳ classifying"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)

	stageCounts := make(map[int]int)
	failures := 0
	for task := range completed {
		bar.Add(1) //nolint:errcheck
		if task.Error != nil {
			failures++
			fmt.Printf("%s: %v\n", task.Result.path, task.Error)
			continue
		}

		r := task.Result.result
		stageCounts[r.Stage]++
		fmt.Printf("%s: stage %d (%s), hue %.1f, confidence %.2f, days to peak %.1f\n",
			task.Result.path, r.Stage, r.Label, r.Hue, r.Confidence, r.DaysToPeak)
	}

	fmt.Println()
	fmt.Printf("classified %d of %d images\n", len(paths)-failures, len(paths))

	stages := make([]int, 0, len(stageCounts))
	for stage := range stageCounts {
		stages = append(stages, stage)
	}
	sort.Ints(stages)
	for _, stage := range stages {
		desc, _ := core.StageByNumber(stage)
		fmt.Printf("  stage %d (%s): %d\n", stage, desc.Label, stageCounts[stage])
	}
}

func classifyFile(path string) (fileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileResult{path: path}, fmt.Errorf("error reading file: %w", err)
	}

	result, err := core.Classify(core.NewImageSample(data))
	if err != nil {
		return fileResult{path: path}, err
	}

	return fileResult{path: path, result: result}, nil
}

func collectImagePaths(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if imageExts[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}
