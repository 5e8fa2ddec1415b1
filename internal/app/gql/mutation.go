package gql

import (
	"errors"
	"fmt"
	"strings"

	"partner-ads/database"
	apicampaigns "partner-ads/internal/api/campaigns"
	apidisplays "partner-ads/internal/api/displays"
	apimedia "partner-ads/internal/api/media"
	apirevenues "partner-ads/internal/api/revenues"
	apiusers "partner-ads/internal/api/users"

	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"
)

type result = map[string]interface{}

func recordPayload(name, key string, typ graphql.Output) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:   name,
		Fields: graphql.Fields{key: &graphql.Field{Type: typ}},
	})
}

func okPayload(name string) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:   name,
		Fields: graphql.Fields{"ok": &graphql.Field{Type: graphql.Boolean}},
	})
}

func created[T any](key string, rec *T, err error) (interface{}, error) {
	if err != nil {
		return nil, err
	}
	return result{key: rec}, nil
}

// updated turns a missing record into a payload with a null record.
func updated[T any](key string, rec *T, err error) (interface{}, error) {
	if errors.Is(err, database.ErrNotFound) {
		return result{key: nil}, nil
	}
	if err != nil {
		return nil, err
	}
	return result{key: rec}, nil
}

func deleted(err error) (interface{}, error) {
	if errors.Is(err, database.ErrNotFound) {
		return result{"ok": false}, nil
	}
	if err != nil {
		return nil, err
	}
	return result{"ok": true}, nil
}

func arg(typ graphql.Input) *graphql.ArgumentConfig {
	return &graphql.ArgumentConfig{Type: typ}
}

func required(typ graphql.Input) *graphql.ArgumentConfig {
	return &graphql.ArgumentConfig{Type: graphql.NewNonNull(typ)}
}

func withID(fields graphql.FieldConfigArgument) graphql.FieldConfigArgument {
	fields["id"] = required(graphql.Int)
	return fields
}

// checkIDs fails the mutation when a record reference ("id", "idCampaign",
// ...) is negative, so it never reaches a service as a missing reference.
func checkIDs(next graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		for name, v := range p.Args {
			if !strings.HasPrefix(name, "id") {
				continue
			}
			if n, ok := v.(int); ok && n < 0 {
				return nil, fmt.Errorf("%s: invalid id %d", name, n)
			}
		}
		return next(p)
	}
}

func mutationType(svc Services, t *types) *graphql.Object {
	fields := graphql.Fields{}
	for _, group := range []graphql.Fields{
		userMutations(svc, t),
		imageMutations(svc, t),
		displayMutations(svc, t),
		campaignMutations(svc, t),
		campaignDisplayMutations(svc, t),
		revenueMutations(svc, t),
		campaignImageMutations(svc, t),
	} {
		for name, f := range group {
			f.Resolve = checkIDs(f.Resolve)
			fields[name] = f
		}
	}
	return graphql.NewObject(graphql.ObjectConfig{Name: "Mutation", Fields: fields})
}

// ---------- utilisateurs

func userArgs(t *types, create bool) graphql.FieldConfigArgument {
	a := graphql.FieldConfigArgument{
		"motDePasse":  arg(graphql.String),
		"permissions": arg(JSONString),
		"actif":       arg(graphql.Boolean),
		"contact":     arg(graphql.String),
		"pays":        arg(graphql.String),
		"ville":       arg(graphql.String),
		"picture":     arg(graphql.String),
		"icone":       arg(graphql.String),
	}
	if create {
		a["nom"] = required(graphql.String)
		a["prenom"] = required(graphql.String)
		a["email"] = required(graphql.String)
		a["role"] = required(t.role)
		return a
	}
	a["nom"] = arg(graphql.String)
	a["prenom"] = arg(graphql.String)
	a["email"] = arg(graphql.String)
	a["role"] = arg(t.role)
	return withID(a)
}

func userMutations(svc Services, t *types) graphql.Fields {
	return graphql.Fields{
		"createUtilisateur": &graphql.Field{
			Type: recordPayload("CreateUtilisateur", "utilisateur", t.user),
			Args: userArgs(t, true),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				a := args(p.Args)
				in := apiusers.CreateInput{
					LastName:    a.textOr("nom", ""),
					FirstName:   a.textOr("prenom", ""),
					Email:       *a.str("email"),
					Permissions: a.object("permissions"),
					Active:      a.boolean("actif"),
					Contact:     a.text("contact"),
					Country:     a.text("pays"),
					City:        a.text("ville"),
					Picture:     a.str("picture"),
					Icon:        a.text("icone"),
				}
				if r := a.role("role"); r != nil {
					in.Role = *r
				}
				if pw := a.str("motDePasse"); pw != nil {
					in.Password = *pw
				}
				u, err := svc.Users.Create(p.Context, in)
				return created("utilisateur", u, err)
			},
		},
		"updateUtilisateur": &graphql.Field{
			Type: recordPayload("UpdateUtilisateur", "utilisateur", t.user),
			Args: userArgs(t, false),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				a := args(p.Args)
				u, err := svc.Users.Update(p.Context, a.mustID("id"), apiusers.Patch{
					LastName:    a.text("nom"),
					FirstName:   a.text("prenom"),
					Email:       a.str("email"),
					Password:    a.str("motDePasse"),
					Role:        a.role("role"),
					Permissions: a.object("permissions"),
					Active:      a.boolean("actif"),
					Contact:     a.text("contact"),
					Country:     a.text("pays"),
					City:        a.text("ville"),
					Picture:     a.str("picture"),
					Icon:        a.text("icone"),
				})
				return updated("utilisateur", u, err)
			},
		},
		"deleteUtilisateur": &graphql.Field{
			Type: okPayload("DeleteUtilisateur"),
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return deleted(svc.Users.Delete(p.Context, args(p.Args).mustID("id")))
			},
		},
		"loginUtilisateur": &graphql.Field{
			Type: graphql.NewObject(graphql.ObjectConfig{
				Name: "LoginUtilisateur",
				Fields: graphql.Fields{
					"utilisateur": &graphql.Field{Type: t.user},
					"ok":          &graphql.Field{Type: graphql.Boolean},
					"message":     &graphql.Field{Type: graphql.String},
					"token":       &graphql.Field{Type: graphql.String},
				},
			}),
			Args: graphql.FieldConfigArgument{
				"email":      required(graphql.String),
				"motDePasse": required(graphql.String),
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				a := args(p.Args)
				res, err := svc.Users.Login(p.Context, *a.str("email"), *a.str("motDePasse"))
				if err != nil {
					return nil, err
				}
				if !res.OK {
					return result{"utilisateur": nil, "ok": false, "message": res.Message, "token": nil}, nil
				}
				if sess := SessionFrom(p.Context); sess != nil {
					sess.Token = res.Token
				}
				return result{"utilisateur": res.User, "ok": true, "message": res.Message, "token": res.Token}, nil
			},
		},
	}
}

// ---------- images

func imageMutations(svc Services, t *types) graphql.Fields {
	return graphql.Fields{
		"createImage": &graphql.Field{
			Type: recordPayload("CreateImage", "imageObj", t.image),
			Args: graphql.FieldConfigArgument{
				"image":                   required(graphql.String),
				"description":             arg(graphql.String),
				"idUtilisateurPartenaire": arg(graphql.Int),
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				a := args(p.Args)
				img, err := svc.Images.Create(p.Context, apimedia.CreateInput{
					Path:        *a.str("image"),
					Description: a.text("description"),
					OwnerID:     a.id("idUtilisateurPartenaire"),
				})
				return created("imageObj", img, err)
			},
		},
		"updateImage": &graphql.Field{
			Type: recordPayload("UpdateImage", "imageObj", t.image),
			Args: withID(graphql.FieldConfigArgument{
				"image":                   arg(graphql.String),
				"description":             arg(graphql.String),
				"idUtilisateurPartenaire": arg(graphql.Int),
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				a := args(p.Args)
				img, err := svc.Images.Update(p.Context, a.mustID("id"), apimedia.Patch{
					Path:        a.str("image"),
					Description: a.text("description"),
					OwnerID:     a.id("idUtilisateurPartenaire"),
				})
				return updated("imageObj", img, err)
			},
		},
		"deleteImage": &graphql.Field{
			Type: okPayload("DeleteImage"),
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return deleted(svc.Images.Delete(p.Context, args(p.Args).mustID("id")))
			},
		},
		"uploadImage": &graphql.Field{
			Type: graphql.NewObject(graphql.ObjectConfig{
				Name: "UploadImage",
				Fields: graphql.Fields{
					"ok":       &graphql.Field{Type: graphql.Boolean},
					"message":  &graphql.Field{Type: graphql.String},
					"imageObj": &graphql.Field{Type: t.image},
					"campaign": &graphql.Field{Type: t.campaign},
				},
			}),
			Args: graphql.FieldConfigArgument{
				"file":                    required(Upload),
				"description":             arg(graphql.String),
				"idUtilisateurPartenaire": arg(graphql.Int),
				"idCampaign":              arg(graphql.Int),
				"ordreAffichage":          arg(graphql.Int),
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				a := args(p.Args)
				fh := a.file("file")
				if fh == nil {
					return result{"ok": false, "message": "upload failed: missing file"}, nil
				}
				f, err := fh.Open()
				if err != nil {
					return result{"ok": false, "message": "upload failed: " + err.Error()}, nil
				}
				defer f.Close()

				res := svc.Campaigns.Upload(p.Context, apicampaigns.UploadInput{
					Filename:    fh.Filename,
					Content:     f,
					Description: a.text("description"),
					OwnerID:     a.id("idUtilisateurPartenaire"),
					CampaignID:  a.id("idCampaign"),
					Order:       a.integer("ordreAffichage"),
				})
				out := result{"ok": res.OK, "message": res.Message, "imageObj": nil, "campaign": nil}
				if res.Image != nil {
					out["imageObj"] = res.Image
				}
				if res.Campaign != nil {
					out["campaign"] = res.Campaign
				}
				return out, nil
			},
		},
	}
}

// ---------- displays

func displayMutations(svc Services, t *types) graphql.Fields {
	return graphql.Fields{
		"createDisplay": &graphql.Field{
			Type: recordPayload("CreateDisplay", "display", t.display),
			Args: graphql.FieldConfigArgument{
				"displayName":             required(graphql.String),
				"localisation":            arg(graphql.String),
				"idUtilisateurPartenaire": arg(graphql.Int),
				"actif":                   arg(graphql.Boolean),
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				a := args(p.Args)
				d, err := svc.Displays.Create(p.Context, apidisplays.CreateInput{
					Name:     a.textOr("displayName", ""),
					Location: a.text("localisation"),
					OwnerID:  a.id("idUtilisateurPartenaire"),
					Active:   a.boolean("actif"),
				})
				return created("display", d, err)
			},
		},
		"updateDisplay": &graphql.Field{
			Type: recordPayload("UpdateDisplay", "display", t.display),
			Args: withID(graphql.FieldConfigArgument{
				"displayName":             arg(graphql.String),
				"localisation":            arg(graphql.String),
				"idUtilisateurPartenaire": arg(graphql.Int),
				"actif":                   arg(graphql.Boolean),
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				a := args(p.Args)
				d, err := svc.Displays.Update(p.Context, a.mustID("id"), apidisplays.Patch{
					Name:     a.text("displayName"),
					Location: a.text("localisation"),
					OwnerID:  a.id("idUtilisateurPartenaire"),
					Active:   a.boolean("actif"),
				})
				return updated("display", d, err)
			},
		},
		"deleteDisplay": &graphql.Field{
			Type: okPayload("DeleteDisplay"),
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return deleted(svc.Displays.Delete(p.Context, args(p.Args).mustID("id")))
			},
		},
	}
}

// ---------- campaigns

func campaignArgs(t *types, create bool) graphql.FieldConfigArgument {
	a := graphql.FieldConfigArgument{
		"status":                arg(t.status),
		"startDate":             arg(Date),
		"endDate":               arg(Date),
		"budget":                arg(Decimal),
		"description":           arg(graphql.String),
		"idUtilisateurCreateur": arg(graphql.Int),
		"idImage":               arg(graphql.Int),
	}
	if create {
		a["campaignName"] = required(graphql.String)
		return a
	}
	a["campaignName"] = arg(graphql.String)
	return withID(a)
}

func campaignMutations(svc Services, t *types) graphql.Fields {
	return graphql.Fields{
		"createCampaign": &graphql.Field{
			Type: recordPayload("CreateCampaign", "campaign", t.campaign),
			Args: campaignArgs(t, true),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				a := args(p.Args)
				in := apicampaigns.CreateInput{
					Name:        a.textOr("campaignName", ""),
					Status:      a.status("status"),
					StartDate:   a.date("startDate"),
					EndDate:     a.date("endDate"),
					Description: a.text("description"),
					CreatorID:   a.id("idUtilisateurCreateur"),
					ImageID:     a.id("idImage"),
				}
				if b := a.decimal("budget"); b != nil {
					in.Budget = decimal.NewNullDecimal(*b)
				}
				c, err := svc.Campaigns.Create(p.Context, in)
				return created("campaign", c, err)
			},
		},
		"updateCampaign": &graphql.Field{
			Type:        recordPayload("UpdateCampaign", "campaign", t.campaign),
			Description: "Updates a campaign. A status of submitted or cancelled triggers the matching transition; without a status a submitted campaign past its end date completes.",
			Args:        campaignArgs(t, false),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				a := args(p.Args)
				c, err := svc.Campaigns.Update(p.Context, a.mustID("id"), apicampaigns.Patch{
					Name:        a.text("campaignName"),
					Status:      a.status("status"),
					StartDate:   a.date("startDate"),
					EndDate:     a.date("endDate"),
					Budget:      a.decimal("budget"),
					Description: a.text("description"),
					CreatorID:   a.id("idUtilisateurCreateur"),
					ImageID:     a.id("idImage"),
				})
				return updated("campaign", c, err)
			},
		},
		"deleteCampaign": &graphql.Field{
			Type: okPayload("DeleteCampaign"),
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return deleted(svc.Campaigns.Delete(p.Context, args(p.Args).mustID("id")))
			},
		},
	}
}

// ---------- campaign displays

func campaignDisplayMutations(svc Services, t *types) graphql.Fields {
	return graphql.Fields{
		"createCampaignDisplay": &graphql.Field{
			Type: recordPayload("CreateCampaignDisplay", "campaignDisplay", t.campaignDisplay),
			Args: graphql.FieldConfigArgument{
				"idCampaign":         required(graphql.Int),
				"idDisplay":          required(graphql.Int),
				"dateDebutAffichage": arg(Date),
				"dateFinAffichage":   arg(Date),
				"nombreAffichages":   arg(graphql.Int),
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				a := args(p.Args)
				cd, err := svc.Campaigns.CreateCampaignDisplay(p.Context, apicampaigns.DisplayInput{
					CampaignID:  a.mustID("idCampaign"),
					DisplayID:   a.mustID("idDisplay"),
					StartDate:   a.date("dateDebutAffichage"),
					EndDate:     a.date("dateFinAffichage"),
					Impressions: a.integer("nombreAffichages"),
				})
				return created("campaignDisplay", cd, err)
			},
		},
		"updateCampaignDisplay": &graphql.Field{
			Type: recordPayload("UpdateCampaignDisplay", "campaignDisplay", t.campaignDisplay),
			Args: withID(graphql.FieldConfigArgument{
				"idCampaign":         arg(graphql.Int),
				"idDisplay":          arg(graphql.Int),
				"dateDebutAffichage": arg(Date),
				"dateFinAffichage":   arg(Date),
				"nombreAffichages":   arg(graphql.Int),
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				a := args(p.Args)
				cd, err := svc.Campaigns.UpdateCampaignDisplay(p.Context, a.mustID("id"), apicampaigns.DisplayPatch{
					CampaignID:  a.id("idCampaign"),
					DisplayID:   a.id("idDisplay"),
					StartDate:   a.date("dateDebutAffichage"),
					EndDate:     a.date("dateFinAffichage"),
					Impressions: a.integer("nombreAffichages"),
				})
				return updated("campaignDisplay", cd, err)
			},
		},
		"deleteCampaignDisplay": &graphql.Field{
			Type: okPayload("DeleteCampaignDisplay"),
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return deleted(svc.Campaigns.DeleteCampaignDisplay(p.Context, args(p.Args).mustID("id")))
			},
		},
	}
}

// ---------- revenues

func revenueMutations(svc Services, t *types) graphql.Fields {
	return graphql.Fields{
		"createRevenue": &graphql.Field{
			Type: recordPayload("CreateRevenue", "revenueObj", t.revenue),
			Args: graphql.FieldConfigArgument{
				"revenue":                 required(Decimal),
				"source":                  arg(graphql.String),
				"description":             arg(graphql.String),
				"dateRevenue":             arg(Date),
				"idUtilisateurPartenaire": arg(graphql.Int),
				"idCampaign":              arg(graphql.Int),
				"idDisplay":               arg(graphql.Int),
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				a := args(p.Args)
				in := apirevenues.CreateInput{
					Source:      a.text("source"),
					Description: a.text("description"),
					Date:        a.date("dateRevenue"),
					PartnerID:   a.id("idUtilisateurPartenaire"),
					CampaignID:  a.id("idCampaign"),
					DisplayID:   a.id("idDisplay"),
				}
				if amount := a.decimal("revenue"); amount != nil {
					in.Amount = *amount
				}
				r, err := svc.Revenues.Create(p.Context, in)
				return created("revenueObj", r, err)
			},
		},
		"updateRevenue": &graphql.Field{
			Type: recordPayload("UpdateRevenue", "revenueObj", t.revenue),
			Args: withID(graphql.FieldConfigArgument{
				"revenue":                 arg(Decimal),
				"source":                  arg(graphql.String),
				"description":             arg(graphql.String),
				"dateRevenue":             arg(Date),
				"idUtilisateurPartenaire": arg(graphql.Int),
				"idCampaign":              arg(graphql.Int),
				"idDisplay":               arg(graphql.Int),
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				a := args(p.Args)
				r, err := svc.Revenues.Update(p.Context, a.mustID("id"), apirevenues.Patch{
					Amount:      a.decimal("revenue"),
					Source:      a.text("source"),
					Description: a.text("description"),
					Date:        a.date("dateRevenue"),
					PartnerID:   a.id("idUtilisateurPartenaire"),
					CampaignID:  a.id("idCampaign"),
					DisplayID:   a.id("idDisplay"),
				})
				return updated("revenueObj", r, err)
			},
		},
		"deleteRevenue": &graphql.Field{
			Type: okPayload("DeleteRevenue"),
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return deleted(svc.Revenues.Delete(p.Context, args(p.Args).mustID("id")))
			},
		},
	}
}

// ---------- campaign images

func campaignImageMutations(svc Services, t *types) graphql.Fields {
	return graphql.Fields{
		"createCampaignImage": &graphql.Field{
			Type: recordPayload("CreateCampaignImage", "campaignImage", t.campaignImage),
			Args: graphql.FieldConfigArgument{
				"idCampaign":     required(graphql.Int),
				"idImage":        required(graphql.Int),
				"ordreAffichage": arg(graphql.Int),
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				a := args(p.Args)
				ci, err := svc.Campaigns.CreateCampaignImage(p.Context, apicampaigns.ImageInput{
					CampaignID: a.mustID("idCampaign"),
					ImageID:    a.mustID("idImage"),
					Order:      a.integer("ordreAffichage"),
				})
				return created("campaignImage", ci, err)
			},
		},
		"updateCampaignImage": &graphql.Field{
			Type: recordPayload("UpdateCampaignImage", "campaignImage", t.campaignImage),
			Args: withID(graphql.FieldConfigArgument{
				"idCampaign":     arg(graphql.Int),
				"idImage":        arg(graphql.Int),
				"ordreAffichage": arg(graphql.Int),
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				a := args(p.Args)
				ci, err := svc.Campaigns.UpdateCampaignImage(p.Context, a.mustID("id"), apicampaigns.ImagePatch{
					CampaignID: a.id("idCampaign"),
					ImageID:    a.id("idImage"),
					Order:      a.integer("ordreAffichage"),
				})
				return updated("campaignImage", ci, err)
			},
		},
		"deleteCampaignImage": &graphql.Field{
			Type: okPayload("DeleteCampaignImage"),
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return deleted(svc.Campaigns.DeleteCampaignImage(p.Context, args(p.Args).mustID("id")))
			},
		},
	}
}
