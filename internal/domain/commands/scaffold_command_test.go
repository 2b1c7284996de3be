//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/railstemplate/internal/domain/commands"
	"github.com/rios0rios0/railstemplate/internal/domain/entities"
	"github.com/rios0rios0/railstemplate/internal/domain/repositories"
	"github.com/rios0rios0/railstemplate/test/domain/entitybuilders"
	"github.com/rios0rios0/railstemplate/test/infrastructure/repositorydoubles"
)

type scaffoldFixture struct {
	project   *repositorydoubles.MemoryProjectRepository
	framework *repositorydoubles.StubFrameworkRepository
	packages  *repositorydoubles.SpyPackageRepository
	vcs       *repositorydoubles.SpyVCSRepository
	prompt    *repositorydoubles.StubPromptRepository
	out       *bytes.Buffer
}

func newScaffoldFixture(files map[string]string) *scaffoldFixture {
	project := repositorydoubles.NewMemoryProjectRepository(files)
	return &scaffoldFixture{
		project:   project,
		framework: &repositorydoubles.StubFrameworkRepository{VersionBanner: "Rails 6.1.4", Project: project},
		packages:  &repositorydoubles.SpyPackageRepository{},
		vcs:       &repositorydoubles.SpyVCSRepository{},
		prompt:    &repositorydoubles.StubPromptRepository{},
		out:       &bytes.Buffer{},
	}
}

func (f *scaffoldFixture) command(templates ...*entities.Template) *commands.ScaffoldCommand {
	workspaces := &repositorydoubles.StubWorkspaceRepository{Workspace: &repositories.Workspace{
		Project:   f.project,
		Framework: f.framework,
		Packages:  f.packages,
		VCS:       f.vcs,
	}}
	return commands.NewScaffoldCommand(
		repositorydoubles.NewStubTemplateRepository(templates...),
		workspaces,
		f.prompt,
		f.out,
	)
}

func newSettings(template string) *entities.Settings {
	return &entities.Settings{Template: template, CommitMessage: entities.DefaultCommitMessage}
}

func stripManifestComments() entities.PipelineStep {
	return entities.PipelineStep{
		Name: "strip_manifest_comments",
		Actions: []entities.Action{entities.EditFiles{Edits: []entities.FileEdit{{
			Target:     entities.FixedFile("Gemfile"),
			Operations: []entities.EditOperation{entities.DeleteMatching{Pattern: entities.CommentLinePattern}},
		}}}},
	}
}

var allStates = []entities.PipelineState{ //nolint:gochecknoglobals // expected history
	entities.StateInit,
	entities.StateVersionChecked,
	entities.StateDependenciesDeclared,
	entities.StateGeneratorsAndEditsApplied,
	entities.StateFinalized,
	entities.StateDone,
}

func TestScaffoldCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should strip manifest comments and append the declared dependency", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newScaffoldFixture(map[string]string{"Gemfile": "# gem 'example', '~> 0.1'\n"})
		template := entitybuilders.NewTemplateBuilder().
			WithPreparation(stripManifestComments()).
			WithDependency(entitybuilders.NewDependencyBuilder().WithName("foo").WithConstraint("~> 1.0").BuildDependency()).
			BuildTemplate()

		// when
		result, err := fixture.command(template).Execute(context.Background(), newSettings("test-template"),
			commands.ScaffoldOptions{ProjectDir: "/tmp/blog", AppName: "blog"})

		// then
		require.NoError(t, err)
		gemfile := fixture.project.Files["Gemfile"]
		assert.Contains(t, gemfile, "gem \"foo\", \"~> 1.0\"")
		assert.NotContains(t, gemfile, "#")
		assert.Equal(t, 1, fixture.packages.ResolveCalls)
		assert.Equal(t, allStates, result.States)
		assert.True(t, result.Commit.Success)
		assert.Contains(t, fixture.out.String(), "  - cd blog\n")
	})

	t.Run("should keep dependency comments rendered after the stripping step", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newScaffoldFixture(map[string]string{
			"Gemfile": "source 'https://rubygems.org'\n# Use Puma as the app server\ngem 'puma', '~> 5.0'\n",
		})
		template := entitybuilders.NewTemplateBuilder().
			WithPreparation(stripManifestComments()).
			WithDependency(entitybuilders.NewDependencyBuilder().
				WithName("devise").WithConstraint("~> 4.8").WithComment("Authentication").BuildDependency()).
			BuildTemplate()

		// when
		_, err := fixture.command(template).Execute(context.Background(), newSettings("test-template"),
			commands.ScaffoldOptions{AppName: "blog"})

		// then
		require.NoError(t, err)
		gemfile := fixture.project.Files["Gemfile"]
		assert.NotContains(t, gemfile, "# Use Puma")
		assert.Contains(t, gemfile, "# Authentication\ngem \"devise\", \"~> 4.8\"\n")
	})

	t.Run("should abort without side effects when the version is declined", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newScaffoldFixture(map[string]string{"Gemfile": "gem 'rails'\n"})
		fixture.framework.VersionBanner = "Rails 7.0.0"
		fixture.prompt.Answers = []bool{false}
		template := entitybuilders.NewTemplateBuilder().
			WithRequiredRange("~> 6.0.0").
			WithDependency(entitybuilders.NewDependencyBuilder().WithName("foo").BuildDependency()).
			WithStep(entities.PipelineStep{Name: "gen", Actions: []entities.Action{entities.InvokeGenerator{Name: "x"}}}).
			BuildTemplate()

		// when
		result, err := fixture.command(template).Execute(context.Background(), newSettings("test-template"),
			commands.ScaffoldOptions{AppName: "blog"})

		// then
		require.ErrorIs(t, err, entities.ErrVersionMismatch)
		assert.Equal(t, []entities.PipelineState{entities.StateInit, entities.StateAborted}, result.States)
		assert.Empty(t, fixture.project.Writes)
		assert.Empty(t, fixture.framework.Calls)
		assert.Zero(t, fixture.packages.ResolveCalls)
		assert.Empty(t, fixture.vcs.Calls)
		assert.Equal(t, "gem 'rails'\n", fixture.project.Files["Gemfile"])
	})

	t.Run("should stop at a missing anchor and leave the file unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		layout := "!!!\n%html\n  %head\n"
		fixture := newScaffoldFixture(map[string]string{
			"Gemfile": "gem 'rails'\n",
			"app/views/layouts/application.html.haml": layout,
		})
		template := entitybuilders.NewTemplateBuilder().
			WithStep(entities.PipelineStep{Name: "session_links", Actions: []entities.Action{
				entities.EditFiles{Edits: []entities.FileEdit{{
					Target: entities.FixedFile("app/views/layouts/application.html.haml"),
					Operations: []entities.EditOperation{entities.InsertBlock{
						Anchor:   entities.LiteralAnchor("  %body\n"),
						Position: entities.After,
						Text:     "    = link_to 'Sign out'\n",
					}},
				}}},
			}}).
			WithStep(entities.PipelineStep{Name: "later", Actions: []entities.Action{entities.RunTask{Task: "db:migrate"}}}).
			BuildTemplate()

		// when
		result, err := fixture.command(template).Execute(context.Background(), newSettings("test-template"),
			commands.ScaffoldOptions{AppName: "blog"})

		// then
		require.ErrorIs(t, err, entities.ErrAnchorNotFound)
		assert.Equal(t, layout, fixture.project.Files["app/views/layouts/application.html.haml"])
		assert.Equal(t, entities.StateDependenciesDeclared, result.States[len(result.States)-1])
		assert.Empty(t, fixture.framework.Calls)
		assert.Empty(t, fixture.vcs.Calls)
	})

	t.Run("should treat an absent delete pattern as a no-op", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newScaffoldFixture(map[string]string{"Gemfile": "gem 'rails'\n", "config/routes.rb": "draw\n"})
		template := entitybuilders.NewTemplateBuilder().
			WithStep(entities.PipelineStep{Name: "routes", Actions: []entities.Action{
				entities.EditFiles{Edits: []entities.FileEdit{{
					Target:     entities.FixedFile("config/routes.rb"),
					Operations: []entities.EditOperation{entities.DeleteMatching{Pattern: entities.Pattern(`^\s*get 'x'$`)}},
				}}},
			}}).
			BuildTemplate()

		// when
		result, err := fixture.command(template).Execute(context.Background(), newSettings("test-template"),
			commands.ScaffoldOptions{AppName: "blog"})

		// then
		require.NoError(t, err)
		assert.Equal(t, allStates, result.States)
		assert.NotContains(t, fixture.project.Writes, "config/routes.rb")
	})

	t.Run("should propagate a generator failure and skip the rest", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newScaffoldFixture(map[string]string{"Gemfile": "gem 'rails'\n"})
		fixture.framework.GenerateErr = map[string]error{
			"devise:install": fmt.Errorf("%w: exit status 1", entities.ErrGeneratorFailure),
		}
		template := entitybuilders.NewTemplateBuilder().
			WithStep(entities.PipelineStep{Name: "add_users", Actions: []entities.Action{
				entities.InvokeGenerator{Name: "devise:install"},
				entities.InvokeGenerator{Name: "devise", Args: []string{"User"}},
			}}).
			BuildTemplate()

		// when
		_, err := fixture.command(template).Execute(context.Background(), newSettings("test-template"),
			commands.ScaffoldOptions{AppName: "blog"})

		// then
		require.ErrorIs(t, err, entities.ErrGeneratorFailure)
		assert.Contains(t, err.Error(), "add_users")
		assert.Equal(t, []string{"generate devise:install"}, fixture.framework.Calls)
		assert.Empty(t, fixture.vcs.Calls)
	})

	t.Run("should edit the migration the captured generator created", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newScaffoldFixture(map[string]string{
			"Gemfile":                            "gem 'rails'\n",
			"db/migrate/20990101000000_newer.rb": "t.datetime :remember_created_at\n",
		})
		fixture.framework.Effects = map[string]repositorydoubles.GeneratorEffect{
			"devise": repositorydoubles.CreateFiles(map[string]string{
				"db/migrate/20211020120000_devise_create_users.rb": "t.string :email\nt.datetime :remember_created_at\n",
			}),
		}
		template := entitybuilders.NewTemplateBuilder().
			WithStep(entities.PipelineStep{Name: "add_users", Actions: []entities.Action{
				entities.InvokeGenerator{Name: "devise", Args: []string{"User"}, Capture: "devise_user"},
				entities.EditFiles{Edits: []entities.FileEdit{{
					Target: entities.GeneratedFile("devise_user", "db/migrate/*_devise_create_users.rb"),
					Operations: []entities.EditOperation{
						entities.DeleteMatching{Pattern: entities.Pattern(`^.*remember_created_at.*\n`)},
					},
				}}},
			}}).
			BuildTemplate()

		// when
		_, err := fixture.command(template).Execute(context.Background(), newSettings("test-template"),
			commands.ScaffoldOptions{AppName: "blog"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "t.string :email\n", fixture.project.Files["db/migrate/20211020120000_devise_create_users.rb"])
		assert.Equal(t, "t.datetime :remember_created_at\n", fixture.project.Files["db/migrate/20990101000000_newer.rb"])
		assert.Equal(t, []string{"generate devise User"}, fixture.framework.Calls)
	})

	t.Run("should apply every operation on a file in a single write", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newScaffoldFixture(map[string]string{
			"Gemfile":          "gem 'rails'\n",
			"config/routes.rb": "Rails.application.routes.draw do\n  get 'home/index'\nend\n",
		})
		template := entitybuilders.NewTemplateBuilder().
			WithStep(entities.PipelineStep{Name: "routes", Actions: []entities.Action{
				entities.EditFiles{Edits: []entities.FileEdit{{
					Target: entities.FixedFile("config/routes.rb"),
					Operations: []entities.EditOperation{
						entities.ReplaceMatching{
							Pattern:     entities.Pattern(`^\s*get\s*'home/index'$`),
							Replacement: "  root to: 'home#index'",
						},
						entities.InsertBlock{
							Anchor:   entities.PatternAnchor(`^end$`),
							Position: entities.Before,
							Text:     "  resources :users\n",
						},
					},
				}}},
			}}).
			BuildTemplate()

		// when
		_, err := fixture.command(template).Execute(context.Background(), newSettings("test-template"),
			commands.ScaffoldOptions{AppName: "blog"})

		// then
		require.NoError(t, err)
		assert.Equal(t,
			"Rails.application.routes.draw do\n  root to: 'home#index'\n  resources :users\nend\n",
			fixture.project.Files["config/routes.rb"])
		assert.Equal(t, []string{"Gemfile", "config/routes.rb"}, fixture.project.Writes)
	})

	t.Run("should run generators, tasks and packages in declaration order", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newScaffoldFixture(map[string]string{"Gemfile": "gem 'rails'\n"})
		template := entitybuilders.NewTemplateBuilder().
			WithStep(entities.PipelineStep{Name: "one", Actions: []entities.Action{
				entities.StopPreloader{},
				entities.AddPackage{Package: "bootstrap"},
				entities.RunTask{Task: "haml:erb2haml"},
			}}).
			WithStep(entities.PipelineStep{Name: "two", Actions: []entities.Action{
				entities.InvokeGenerator{Name: "controller", Args: []string{"Home", "index"}},
			}}).
			BuildTemplate()

		// when
		_, err := fixture.command(template).Execute(context.Background(), newSettings("test-template"),
			commands.ScaffoldOptions{AppName: "blog"})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, fixture.framework.StopCalls)
		assert.Equal(t, []string{"bootstrap"}, fixture.packages.Packages)
		assert.Equal(t, []string{"task haml:erb2haml", "generate controller Home index"}, fixture.framework.Calls)
	})

	t.Run("should tolerate a preloader that cannot be stopped", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newScaffoldFixture(map[string]string{"Gemfile": "gem 'rails'\n"})
		fixture.framework.StopErr = errors.New("spring: command not found")
		template := entitybuilders.NewTemplateBuilder().
			WithStep(entities.PipelineStep{Name: "stop", Actions: []entities.Action{entities.StopPreloader{}}}).
			BuildTemplate()

		// when
		result, err := fixture.command(template).Execute(context.Background(), newSettings("test-template"),
			commands.ScaffoldOptions{AppName: "blog"})

		// then
		require.NoError(t, err)
		assert.Equal(t, allStates, result.States)
	})

	t.Run("should skip version control when SKIP_GIT is set", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newScaffoldFixture(map[string]string{"Gemfile": "gem 'rails'\n"})
		template := entitybuilders.NewTemplateBuilder().BuildTemplate()
		settings := newSettings("test-template")
		settings.Environment.SkipGit = true

		// when
		result, err := fixture.command(template).Execute(context.Background(), settings,
			commands.ScaffoldOptions{AppName: "blog"})

		// then
		require.NoError(t, err)
		assert.True(t, result.Commit.Skipped)
		assert.Empty(t, fixture.vcs.Calls)
		assert.Contains(t, fixture.out.String(), "App successfully created!")
		assert.Equal(t, allStates, result.States)
	})

	t.Run("should skip version control when SKIP_GIT is present but empty", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newScaffoldFixture(map[string]string{"Gemfile": "gem 'rails'\n"})
		template := entitybuilders.NewTemplateBuilder().BuildTemplate()
		environment, err := entities.LoadEnvironment(map[string]string{"SKIP_GIT": ""})
		require.NoError(t, err)
		settings := newSettings("test-template")
		settings.Environment = *environment

		// when
		result, err := fixture.command(template).Execute(context.Background(), settings,
			commands.ScaffoldOptions{AppName: "blog"})

		// then
		require.NoError(t, err)
		assert.True(t, result.Commit.Skipped)
		assert.Empty(t, fixture.vcs.Calls)
	})

	t.Run("should finish successfully when the commit fails", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newScaffoldFixture(map[string]string{"Gemfile": "gem 'rails'\n"})
		fixture.vcs.CommitErr = errors.New("author identity unknown")
		template := entitybuilders.NewTemplateBuilder().BuildTemplate()

		// when
		result, err := fixture.command(template).Execute(context.Background(), newSettings("test-template"),
			commands.ScaffoldOptions{AppName: "blog"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "author identity unknown", result.Commit.ErrorMessage)
		assert.Equal(t, allStates, result.States)
		assert.Contains(t, fixture.out.String(), "author identity unknown")
	})

	t.Run("should ask before removing a directory and respect the answer", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newScaffoldFixture(map[string]string{
			"Gemfile":             "gem 'rails'\n",
			"test/test_helper.rb": "require 'rails/test_help'\n",
		})
		fixture.prompt.Answers = []bool{false}
		template := entitybuilders.NewTemplateBuilder().
			WithStep(entities.PipelineStep{Name: "install_rspec", Actions: []entities.Action{
				entities.ConfirmRemoval{Path: "test", Question: "Remove the old test/ directory?", Default: true},
			}}).
			BuildTemplate()

		// when
		_, err := fixture.command(template).Execute(context.Background(), newSettings("test-template"),
			commands.ScaffoldOptions{AppName: "blog"})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"Remove the old test/ directory?"}, fixture.prompt.Questions)
		assert.Contains(t, fixture.project.Files, "test/test_helper.rb")
		assert.Empty(t, fixture.project.Removed)
	})

	t.Run("should answer every prompt with its default when asked to", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newScaffoldFixture(map[string]string{
			"Gemfile":             "gem 'rails'\n",
			"test/test_helper.rb": "require 'rails/test_help'\n",
		})
		template := entitybuilders.NewTemplateBuilder().
			WithStep(entities.PipelineStep{Name: "install_rspec", Actions: []entities.Action{
				entities.ConfirmRemoval{Path: "test", Question: "Remove the old test/ directory?", Default: true},
			}}).
			BuildTemplate()

		// when
		_, err := fixture.command(template).Execute(context.Background(), newSettings("test-template"),
			commands.ScaffoldOptions{AppName: "blog", AcceptDefaults: true})

		// then
		require.NoError(t, err)
		assert.Empty(t, fixture.prompt.Questions)
		assert.Equal(t, []string{"test"}, fixture.project.Removed)
		assert.NotContains(t, fixture.project.Files, "test/test_helper.rb")
	})

	t.Run("should decline a version mismatch when answering with defaults", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newScaffoldFixture(map[string]string{"Gemfile": "gem 'rails'\n"})
		fixture.framework.VersionBanner = "Rails 7.0.0"
		template := entitybuilders.NewTemplateBuilder().BuildTemplate()
		settings := newSettings("test-template")
		settings.Environment.AssumeYes = true

		// when
		_, err := fixture.command(template).Execute(context.Background(), settings,
			commands.ScaffoldOptions{AppName: "blog"})

		// then
		require.ErrorIs(t, err, entities.ErrVersionMismatch)
		assert.Empty(t, fixture.prompt.Questions)
	})

	t.Run("should fall back to the configured app name", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newScaffoldFixture(map[string]string{"Gemfile": "gem 'rails'\n"})
		template := entitybuilders.NewTemplateBuilder().BuildTemplate()
		settings := newSettings("test-template")
		settings.AppName = "configured"

		// when
		_, err := fixture.command(template).Execute(context.Background(), settings, commands.ScaffoldOptions{})

		// then
		require.NoError(t, err)
		assert.Contains(t, fixture.out.String(), "  - cd configured\n")
	})

	t.Run("should fail on an unknown template", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newScaffoldFixture(nil)

		// when
		result, err := fixture.command().Execute(context.Background(), newSettings("missing"), commands.ScaffoldOptions{})

		// then
		require.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestDefaultAnswers_Confirm(t *testing.T) {
	t.Parallel()

	// given
	answers := commands.DefaultAnswers{}

	// when
	yes, errYes := answers.Confirm(context.Background(), "q", true)
	no, errNo := answers.Confirm(context.Background(), "q", false)

	// then
	require.NoError(t, errYes)
	require.NoError(t, errNo)
	assert.True(t, yes)
	assert.False(t, no)
}
