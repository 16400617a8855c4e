package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Sahithi-Sritha/FSAD-Project/services"

	"github.com/gin-gonic/gin"
)

type EntryController struct {
	RT *services.RealtimeHub
}

func NewEntryController(rt *services.RealtimeHub) *EntryController {
	return &EntryController{RT: rt}
}

func (ec *EntryController) LogEntry(c *gin.Context) {
	var input services.EntryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := c.GetUint("userID")
	entry, err := services.NewEntryService().LogEntry(uid, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ec.RT.Broadcast(uid, "entry.logged", entry)
	c.JSON(http.StatusCreated, entry)
}

func (ec *EntryController) ListEntries(c *gin.Context) {
	uid := c.GetUint("userID")
	svc := services.NewEntryService()

	if fromStr, toStr := c.Query("from"), c.Query("to"); fromStr != "" || toStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be an RFC3339 timestamp"})
			return
		}
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be an RFC3339 timestamp"})
			return
		}
		if !to.After(from) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be after from"})
			return
		}

		entries, err := svc.ListEntriesByDateRange(uid, from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, entries)
		return
	}

	if c.Query("today") == "true" {
		entries, err := svc.ListTodaysEntries(uid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, entries)
		return
	}

	entries, err := svc.ListEntries(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (ec *EntryController) DeleteEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	uid := c.GetUint("userID")
	if err := services.NewEntryService().DeleteEntry(uid, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ec.RT.Broadcast(uid, "entry.deleted", gin.H{"id": id})
	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}
