package app

import (
	"go.trai.ch/curve/internal/adapters/cache"
	"go.trai.ch/curve/internal/adapters/compiler"
	"go.trai.ch/curve/internal/core/domain"
	"go.trai.ch/curve/internal/core/ports"
	"go.trai.ch/curve/internal/engine/pipeline"
	"go.trai.ch/curve/internal/engine/sampler"
	"go.trai.ch/curve/internal/engine/scheduler"
)

// Pipeline is one assembled plotting pipeline bound to a renderer.
type Pipeline struct {
	Controller *pipeline.Controller
	Queue      *scheduler.Queue
	Cache      *cache.ViewCache
}

// assemble builds the pipeline for cfg. The controller and the cache share
// one memoized compiler, so a changed expression drops the cached samples.
func (a *App) assemble(cfg *domain.Config, renderer ports.Renderer) *Pipeline {
	settings := cfg.Settings
	memo := compiler.NewMemo(a.compiler)
	vc := cache.New(memo, a.resolvers(settings.LogEpsilon), sampler.New(settings), settings, a.tracer)
	memo.OnChange(vc.Invalidate)

	queue := scheduler.NewQueue()
	controller := pipeline.New(settings, memo, vc, renderer, queue, a.tracer, a.logger)
	controller.SetExpression(cfg.Expression)
	if cfg.Color != "" {
		controller.SetColor(cfg.Color)
	}

	return &Pipeline{
		Controller: controller,
		Queue:      queue,
		Cache:      vc,
	}
}
