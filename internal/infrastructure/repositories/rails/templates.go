package rails

import (
	"github.com/rios0rios0/railstemplate/internal/domain/entities"
)

const (
	TemplateBase     = "base"
	TemplateDevise42 = "devise42"

	gemfilePath        = "Gemfile"
	routesPath         = "config/routes.rb"
	javascriptPackPath = "app/javascript/packs/application.js"
	layoutPath         = "app/views/layouts/application.html.haml"
	developmentEnvPath = "config/environments/development.rb"
	deviseInitPath     = "config/initializers/devise.rb"
	userModelPath      = "app/models/user.rb"
	callbacksPath      = "app/controllers/users/omniauth_callbacks_controller.rb"

	deviseUserCapture = "devise_user"
	deviseMigration   = "db/migrate/*_devise_create_users.rb"

	rootRoute          = "  root to: 'home#index'"
	omniauthableDevise = "  devise :omniauthable, omniauth_providers: [:marvin]\n"
)

const javascriptImports = `
import 'bootstrap/dist/js/bootstrap';
import 'bootstrap/dist/css/bootstrap';
import '@fortawesome/fontawesome-free/css/all';
`

const sessionLinks = `    %p.notice= notice
    %p.alert= alert
    = link_to "Sign in with 42", user_marvin_omniauth_authorize_path unless current_user
    = link_to "Sign out", destroy_user_session_path, method: :delete if current_user
`

const marvinCallback = `
  def marvin
    @user = User.from_omniauth(request.env["omniauth.auth"])

    if @user.persisted?
      sign_in_and_redirect @user, event: :authentication
      set_flash_message(:notice, :success, kind: "42") if is_navigational_format?
    else
      session["devise.marvin_data"] = request.env["omniauth.auth"]
      redirect_to new_user_registration_url
    end
  end

  def after_omniauth_failure_path_for scope
    # instead of root_path you can add sign_in_path if you end up to have your own sign_in page.
    root_path
  end

`

const fromOmniauth = `
  def self.from_omniauth(auth)
    where(login: auth.info.login).first_or_create do |user|
      user.email = auth.info.email
      user.login = auth.info.login
      user.first_name = auth.info.first_name
      user.last_name = auth.info.last_name
    end
  end
`

const signOutRoute = `  devise_scope :user do
    delete 'sign_out', to: 'devise/sessions#destroy', as: :destroy_user_session
  end

  # - 

`

const (
	omniauthInitializer = "  config.omniauth :marvin, ENV[\"FT_ID\"], ENV[\"FT_SECRET\"]\n\n"
	mailerDefaultURL    = "  config.action_mailer.default_url_options = { host: 'localhost', port: 3000 }\n"
	deviseForUsers      = `  devise_for :users, controllers: { omniauth_callbacks: "users/omniauth_callbacks" }`
)

// BaseTemplate is HAML views, friendly_id slugs, Bootstrap with Font Awesome and a
// Home page mounted as the root route.
func BaseTemplate() *entities.Template {
	dependencies := entities.NewDependencyTable()
	declareAll(dependencies, entities.GroupRuntime, baseRuntimeGems())

	return &entities.Template{
		Name:          TemplateBase,
		Description:   "HAML, friendly_id, Bootstrap and Font Awesome with a Home page",
		RequiredRange: entities.DefaultRequiredRange,
		ManifestPath:  gemfilePath,
		Dependencies:  dependencies,
		Preparation:   preparationSteps(),
		Steps: []entities.PipelineStep{
			bootstrapStep(),
			hamlStep(),
			friendlyIDStep(),
			{
				Name: "add_home",
				Actions: []entities.Action{
					entities.InvokeGenerator{Name: "controller", Args: []string{"Home", "index"}},
					editFile(routesPath, entities.InsertBlock{
						Anchor:   entities.PatternAnchor(`^Rails\.application\.routes\.draw do[ \t]*\n`),
						Position: entities.After,
						Text:     rootRoute + "\n",
					}),
				},
			},
		},
		FollowUps: baseFollowUps(),
	}
}

// Devise42Template is the base template plus Devise sign-in through the 42 intranet
// OAuth provider, dotenv and RSpec.
func Devise42Template() *entities.Template {
	dependencies := entities.NewDependencyTable()
	declareAll(dependencies, entities.GroupRuntime, append(baseRuntimeGems(),
		entities.DependencySpec{Name: "devise", Constraint: "~> 4.8", Comment: "Authentication"},
		entities.DependencySpec{Name: "omniauth-marvin", Constraint: "~> 1.2", Comment: "42 intranet OAuth strategy"},
	))
	declareAll(dependencies, entities.GroupDevTest, []entities.DependencySpec{
		{Name: "dotenv-rails", Constraint: "~> 2.7", Comment: "Load FT_ID and FT_SECRET from .env"},
		{Name: "rspec-rails", Constraint: "~> 5.0"},
	})

	return &entities.Template{
		Name:          TemplateDevise42,
		Description:   "base template with Devise, OmniAuth 42 sign-in, dotenv and RSpec",
		RequiredRange: entities.DefaultRequiredRange,
		ManifestPath:  gemfilePath,
		Dependencies:  dependencies,
		Preparation:   preparationSteps(),
		Steps: []entities.PipelineStep{
			bootstrapStep(),
			hamlStep(),
			friendlyIDStep(),
			{
				Name: "add_home",
				Actions: []entities.Action{
					entities.InvokeGenerator{Name: "controller", Args: []string{"Home", "index"}},
					editFile(routesPath, entities.ReplaceMatching{
						Pattern:     entities.Pattern(`^\s*get\s*'home/index'$`),
						Replacement: rootRoute,
					}),
				},
			},
			usersStep(),
			testFrameworkStep(),
		},
		FollowUps: append(baseFollowUps(),
			"set your FT_ID and FT_SECRET into your .env with credentials generated here: "+
				"https://profile.intra.42.fr/oauth/applications",
		),
	}
}

func baseRuntimeGems() []entities.DependencySpec {
	return []entities.DependencySpec{
		{Name: "haml-rails", Constraint: "~> 2.0", Comment: "HAML views"},
		{Name: "friendly_id", Constraint: "~> 5.4", Comment: "Human-friendly URL slugs"},
	}
}

func baseFollowUps() []string {
	return []string{
		"Update config/database.yml with your database credentials",
		"rails db:create db:migrate",
	}
}

// preparationSteps must run before the dependencies are flushed into the Gemfile:
// stripping comments afterwards would also strip the comments of the new entries.
func preparationSteps() []entities.PipelineStep {
	return []entities.PipelineStep{
		{Name: "stop_spring", Actions: []entities.Action{entities.StopPreloader{}}},
		{
			Name:    "strip_gemfile_comments",
			Actions: []entities.Action{editFile(gemfilePath, entities.DeleteMatching{Pattern: entities.CommentLinePattern})},
		},
	}
}

func bootstrapStep() entities.PipelineStep {
	return entities.PipelineStep{
		Name: "add_bootstrap_and_font_awesome",
		Actions: []entities.Action{
			entities.AddPackage{Package: "bootstrap@next"},
			entities.AddPackage{Package: "@popperjs/core"},
			entities.AddPackage{Package: "@fortawesome/fontawesome-free"},
			editFile(javascriptPackPath, entities.InsertBlock{
				Anchor:   entities.LiteralAnchor("// that code so it'll be compiled.\n"),
				Position: entities.After,
				Text:     javascriptImports,
			}),
		},
	}
}

func hamlStep() entities.PipelineStep {
	return entities.PipelineStep{
		Name:    "convert_views_to_haml",
		Actions: []entities.Action{entities.RunTask{Task: "haml:erb2haml", Args: []string{"HAML_RAILS_DELETE_ERB=true"}}},
	}
}

func friendlyIDStep() entities.PipelineStep {
	return entities.PipelineStep{
		Name:    "add_friendly_id",
		Actions: []entities.Action{entities.InvokeGenerator{Name: "friendly_id"}},
	}
}

func usersStep() entities.PipelineStep {
	return entities.PipelineStep{
		Name: "add_users",
		Actions: []entities.Action{
			entities.InvokeGenerator{Name: "devise:install"},
			editFile(developmentEnvPath, entities.InsertBlock{
				Anchor:   entities.LiteralAnchor("Rails.application.configure do\n"),
				Position: entities.After,
				Text:     mailerDefaultURL,
			}),
			editFile(layoutPath, entities.InsertBlock{
				Anchor:   entities.LiteralAnchor("  %body\n"),
				Position: entities.After,
				Text:     sessionLinks,
			}),
			entities.InvokeGenerator{
				Name:    "devise",
				Args:    []string{"User", "first_name", "last_name", "login"},
				Capture: deviseUserCapture,
			},
			entities.InvokeGenerator{Name: "devise:controllers", Args: []string{"users", "-c=omniauth_callbacks"}},
			entities.EditFiles{Edits: []entities.FileEdit{
				{
					Target: entities.FixedFile(callbacksPath),
					Operations: []entities.EditOperation{
						entities.DeleteMatching{Pattern: entities.CommentLinePattern},
						entities.InsertBlock{Anchor: entities.PatternAnchor(`^end$`), Position: entities.Before, Text: marvinCallback},
					},
				},
				{
					Target: entities.FixedFile(deviseInitPath),
					Operations: []entities.EditOperation{
						entities.InsertBlock{
							Anchor:   entities.LiteralAnchor("  # ==> Warden configuration"),
							Position: entities.Before,
							Text:     omniauthInitializer,
						},
					},
				},
				{
					Target: entities.FixedFile(userModelPath),
					Operations: []entities.EditOperation{
						entities.ReplaceMatching{Pattern: entities.Pattern(`^\s*devise.*$\n`), Replacement: omniauthableDevise},
						entities.DeleteMatching{Pattern: entities.Pattern(`^\s*:recoverable.*$\n`)},
						entities.DeleteMatching{Pattern: entities.CommentLinePattern},
						entities.InsertBlock{
							Anchor:   entities.LiteralAnchor(omniauthableDevise),
							Position: entities.After,
							Text:     fromOmniauth,
						},
					},
				},
				{
					Target: entities.GeneratedFile(deviseUserCapture, deviseMigration),
					Operations: []entities.EditOperation{
						entities.DeleteMatching{Pattern: entities.Pattern(`^\s*## Recov.*\n.*\n.*$`)},
						entities.DeleteMatching{Pattern: entities.Pattern(`^\s*## Rememberable.*\n.*$`)},
						entities.DeleteMatching{Pattern: entities.Pattern(`^\s*add_index\s.*:users,\s.*:reset_password_token.*$`)},
					},
				},
				{
					Target: entities.FixedFile(routesPath),
					Operations: []entities.EditOperation{
						entities.ReplaceMatching{Pattern: entities.Pattern(`^\s*devise.*$`), Replacement: deviseForUsers},
						entities.InsertBlock{
							Anchor:   entities.PatternAnchor(`^\s*devise_for :users.*\n`),
							Position: entities.After,
							Text:     signOutRoute,
						},
					},
				},
			}},
		},
	}
}

func testFrameworkStep() entities.PipelineStep {
	return entities.PipelineStep{
		Name: "install_rspec",
		Actions: []entities.Action{
			entities.InvokeGenerator{Name: "rspec:install"},
			entities.ConfirmRemoval{Path: "test", Question: "Remove the old test/ directory?", Default: true},
		},
	}
}

func editFile(path string, operations ...entities.EditOperation) entities.EditFiles {
	return entities.EditFiles{Edits: []entities.FileEdit{{Target: entities.FixedFile(path), Operations: operations}}}
}

func declareAll(table *entities.DependencyTable, group entities.DependencyGroup, specs []entities.DependencySpec) {
	for _, spec := range specs {
		spec.Group = group
		table.Declare(spec)
	}
}
