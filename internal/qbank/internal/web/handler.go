// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/lms/internal/permission"
	"github.com/ecodeclub/lms/internal/qbank/internal/domain"
	"github.com/ecodeclub/lms/internal/qbank/internal/errs"
	"github.com/ecodeclub/lms/internal/qbank/internal/modal"
	"github.com/ecodeclub/lms/internal/qbank/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc      service.Service
	renderer *service.FragmentRenderer
}

func NewHandler(svc service.Service, renderer *service.FragmentRenderer) *Handler {
	return &Handler{
		svc:      svc,
		renderer: renderer,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/qbank")
	g.POST("/shared/list", ginx.BS[ListReq](h.SharedList))
	g.POST("/private/list", ginx.BS[ListReq](h.PrivateList))
	g.POST("/recent", ginx.BS[RecentReq](h.Recent))
	g.POST("/viewed", ginx.BS[ViewedReq](h.Viewed))
	g.POST("/create", ginx.BS[CreateReq](h.Create))

	server.GET("/question/banks", ginx.S(h.BankList))

	quiz := server.Group("/quiz")
	quiz.POST("/fragment/switch_question_bank", ginx.BS[FragmentReq](h.SwitchBankFragment))
	quiz.POST("/modal/switch_bank", ginx.BS[ModalReq](h.SwitchBankModal))
}

func actorOf(sess session.Session) permission.Actor {
	return permission.Actor{Uid: sess.Claims().Uid}
}

func (h *Handler) SharedList(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	return h.list(ctx, req.toQuery(domain.PluginTypeShared), sess)
}

func (h *Handler) PrivateList(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	return h.list(ctx, req.toQuery(domain.PluginTypePrivate), sess)
}

func (h *Handler) list(ctx *ginx.Context, q domain.ListQuery, sess session.Session) (ginx.Result, error) {
	banks, err := h.svc.ListBankInstances(ctx, actorOf(sess), q)
	if err != nil {
		return toResult(err)
	}
	return ginx.Result{Data: newBanks(banks)}, nil
}

func (h *Handler) Recent(ctx *ginx.Context, req RecentReq, sess session.Session) (ginx.Result, error) {
	banks, err := h.svc.RecentlyViewed(ctx, actorOf(sess), req.ExcludeCourseID)
	if err != nil {
		return toResult(err)
	}
	return ginx.Result{Data: newBanks(banks)}, nil
}

func (h *Handler) Viewed(ctx *ginx.Context, req ViewedReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.AddToRecentlyViewed(ctx, actorOf(sess), req.ContextID)
	if err != nil {
		return toResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	cm, err := h.svc.CreateDefaultInstance(ctx, actorOf(sess), req.CourseID, req.Name, domain.SubtypeStandard)
	if err != nil {
		return toResult(err)
	}
	return ginx.Result{Data: CourseModule{
		ID:        cm.ID,
		CourseID:  cm.CourseID,
		Instance:  cm.Instance,
		ContextID: cm.ContextID,
	}}, nil
}

// BankList 课程题库列表页，createdefault=1 时没有题库就先创建
func (h *Handler) BankList(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	query := ctx.Request.URL.Query()
	courseID, err := strconv.ParseInt(query.Get("courseid"), 10, 64)
	if err != nil {
		return errorResult(errs.InvalidCourseID), nil
	}
	banks, err := h.svc.CourseBanks(ctx, actorOf(sess), courseID, query.Get("createdefault") == "1")
	if err != nil {
		return toResult(err)
	}
	return ginx.Result{Data: BankList{
		CourseID: courseID,
		Banks:    newBanks(banks),
	}}, nil
}

func (h *Handler) SwitchBankFragment(ctx *ginx.Context, req FragmentReq, sess session.Session) (ginx.Result, error) {
	html, err := h.renderer.SwitchQuestionBank(ctx, actorOf(sess), req.ContextID, req.QuizCMID, req.BankModID)
	if err != nil {
		return toResult(err)
	}
	return ginx.Result{Data: html}, nil
}

// SwitchBankModal 服务端准备好切换题库弹窗的内容，前端直接展示
func (h *Handler) SwitchBankModal(ctx *ginx.Context, req ModalReq, sess session.Session) (ginx.Result, error) {
	ac := modal.NewDeferredAutocompleter()
	m := modal.NewAddQuestionModal(modal.Config{
		Large:         true,
		Show:          true,
		RemoveOnClose: true,
		ContextID:     req.ContextID,
		AddOnPage:     req.AddOnPage,
		QuizModID:     req.QuizCMID,
		BankModID:     req.BankModID,
		OriginalTitle: req.Title,
	}, newFragmentLoader(h.renderer, actorOf(sess)), ac)
	selector := req.Selector
	if selector == "" {
		selector = "[name=searchbanks]"
	}
	err := m.HandleSwitchBankContentReload(ctx, selector)
	if err != nil {
		return toResult(err)
	}
	res := Modal{
		Title:   m.Title(),
		Footer:  m.Footer(),
		Body:    m.Body(),
		Classes: m.Classes(),
	}
	for _, item := range ac.Items() {
		res.Autocompletes = append(res.Autocompletes, Autocomplete{
			Selector:    item.Selector,
			Placeholder: item.Placeholder,
		})
	}
	return ginx.Result{Data: res}, nil
}
